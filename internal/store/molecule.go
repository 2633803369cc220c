package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spectrakit/fragmentor/internal/models"
)

// MoleculeStore handles molecule CRUD operations.
type MoleculeStore struct {
	Base
}

// NewMoleculeStore creates a new MoleculeStore.
func NewMoleculeStore(base Base) *MoleculeStore {
	return &MoleculeStore{Base: base}
}

// CreateMolecule inserts a new molecule and returns the created record.
func (s *MoleculeStore) CreateMolecule(ctx context.Context, req models.CreateMoleculeRequest) (*models.Molecule, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	atoms, err := marshalJSON(req.Atoms)
	if err != nil {
		return nil, fmt.Errorf("preparing molecule atoms: %w", err)
	}

	bonds, err := marshalJSON(req.Bonds)
	if err != nil {
		return nil, fmt.Errorf("preparing molecule bonds: %w", err)
	}

	query := `INSERT INTO molecules (id, name, atoms, bonds)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + moleculeColumns

	row := s.Pool.QueryRow(ctx, query, req.ID, req.Name, atoms, bonds)

	m, err := scanMolecule(row.Scan)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning created molecule: %w", err)
	}

	s.notify("molecules", "insert", m.ID)

	return m, nil
}

// GetMolecule fetches a molecule by ID.
func (s *MoleculeStore) GetMolecule(ctx context.Context, id string) (*models.Molecule, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + moleculeColumns + ` FROM molecules WHERE id = $1`

	m, err := scanMolecule(s.Pool.QueryRow(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrMoleculeNotFound
		}

		return nil, fmt.Errorf("getting molecule %s: %w", id, err)
	}

	return m, nil
}

// ListMolecules returns molecule summaries ordered by creation time,
// newest first. The second return value reports whether more rows
// exist beyond the requested page.
func (s *MoleculeStore) ListMolecules(ctx context.Context, limit, offset int) ([]models.MoleculeSummary, bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	// One extra row decides the has-more flag.
	query := `SELECT id, name, jsonb_array_length(atoms), jsonb_array_length(bonds), created_at
		FROM molecules
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2`

	rows, err := s.Pool.Query(ctx, query, limit+1, offset)
	if err != nil {
		return nil, false, fmt.Errorf("listing molecules: %w", err)
	}
	defer rows.Close()

	summaries := make([]models.MoleculeSummary, 0, limit)

	for rows.Next() {
		var sum models.MoleculeSummary
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.AtomCount, &sum.BondCount, &sum.CreatedAt); err != nil {
			return nil, false, fmt.Errorf("scanning molecule summary: %w", err)
		}

		summaries = append(summaries, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating molecules: %w", err)
	}

	hasMore := len(summaries) > limit
	if hasMore {
		summaries = summaries[:limit]
	}

	return summaries, hasMore, nil
}

// DeleteMolecule removes a molecule and, via cascade, its fragments
// and spectra.
func (s *MoleculeStore) DeleteMolecule(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, `DELETE FROM molecules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting molecule %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrMoleculeNotFound
	}

	s.notify("molecules", "delete", id)

	return nil
}

// CountMolecules returns the total number of stored molecules.
func (s *MoleculeStore) CountMolecules(ctx context.Context) (int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int
	if err := s.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM molecules`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting molecules: %w", err)
	}

	return count, nil
}
