package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spectrakit/fragmentor/internal/models"
)

// FragmentStore handles persisted fragment records.
type FragmentStore struct {
	Base
}

// NewFragmentStore creates a new FragmentStore.
func NewFragmentStore(base Base) *FragmentStore {
	return &FragmentStore{Base: base}
}

// CreateFragment stores an extracted fragment. The referenced molecule
// must exist; a dangling molecule_id surfaces as ErrMoleculeNotFound.
func (s *FragmentStore) CreateFragment(ctx context.Context, f models.Fragment) (*models.Fragment, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	excluded, err := marshalJSON(f.Excluded)
	if err != nil {
		return nil, fmt.Errorf("preparing fragment exclusions: %w", err)
	}

	atoms, err := marshalJSON(f.Atoms)
	if err != nil {
		return nil, fmt.Errorf("preparing fragment atoms: %w", err)
	}

	bonds, err := marshalJSON(f.Bonds)
	if err != nil {
		return nil, fmt.Errorf("preparing fragment bonds: %w", err)
	}

	query := `INSERT INTO fragments (id, molecule_id, root_atom, max_sphere, excluded, placeholders, atoms, bonds)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + fragmentColumns

	row := s.Pool.QueryRow(ctx, query,
		f.ID, f.MoleculeID, f.RootAtom, f.MaxSphere, excluded, f.Placeholders, atoms, bonds)

	created, err := scanFragment(row.Scan)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, models.ErrDuplicateKey
			case "23503":
				return nil, models.ErrMoleculeNotFound
			}
		}

		return nil, fmt.Errorf("scanning created fragment: %w", err)
	}

	s.notify("fragments", "insert", created.ID)

	return created, nil
}

// GetFragment fetches a fragment by ID.
func (s *FragmentStore) GetFragment(ctx context.Context, id string) (*models.Fragment, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + fragmentColumns + ` FROM fragments WHERE id = $1`

	f, err := scanFragment(s.Pool.QueryRow(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrFragmentNotFound
		}

		return nil, fmt.Errorf("getting fragment %s: %w", id, err)
	}

	return f, nil
}

// ListFragments returns the fragments persisted for a molecule,
// newest first.
func (s *FragmentStore) ListFragments(ctx context.Context, moleculeID string, limit, offset int) ([]models.Fragment, bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + fragmentColumns + ` FROM fragments
		WHERE molecule_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`

	rows, err := s.Pool.Query(ctx, query, moleculeID, limit+1, offset)
	if err != nil {
		return nil, false, fmt.Errorf("listing fragments for molecule %s: %w", moleculeID, err)
	}
	defer rows.Close()

	fragments := make([]models.Fragment, 0, limit)

	for rows.Next() {
		f, err := scanFragment(rows.Scan)
		if err != nil {
			return nil, false, fmt.Errorf("scanning fragment: %w", err)
		}

		fragments = append(fragments, *f)
	}

	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating fragments: %w", err)
	}

	hasMore := len(fragments) > limit
	if hasMore {
		fragments = fragments[:limit]
	}

	return fragments, hasMore, nil
}

// DeleteFragment removes a persisted fragment.
func (s *FragmentStore) DeleteFragment(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, `DELETE FROM fragments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting fragment %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrFragmentNotFound
	}

	s.notify("fragments", "delete", id)

	return nil
}

// CountFragments returns the total number of persisted fragments.
func (s *FragmentStore) CountFragments(ctx context.Context) (int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int
	if err := s.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM fragments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting fragments: %w", err)
	}

	return count, nil
}
