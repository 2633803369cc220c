package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spectrakit/fragmentor/internal/models"
)

// SpectrumStore handles stored NMR spectra.
type SpectrumStore struct {
	Base
}

// NewSpectrumStore creates a new SpectrumStore.
func NewSpectrumStore(base Base) *SpectrumStore {
	return &SpectrumStore{Base: base}
}

// CreateSpectrum stores a spectrum for a molecule. A dangling
// molecule_id surfaces as ErrMoleculeNotFound.
func (s *SpectrumStore) CreateSpectrum(ctx context.Context, sp models.Spectrum) (*models.Spectrum, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	nuclei, err := marshalJSON(sp.Nuclei)
	if err != nil {
		return nil, fmt.Errorf("preparing spectrum nuclei: %w", err)
	}

	signals, err := marshalJSON(sp.Signals)
	if err != nil {
		return nil, fmt.Errorf("preparing spectrum signals: %w", err)
	}

	query := `INSERT INTO spectra (id, molecule_id, name, experiment, nuclei, frequency_mhz, solvent, standard, signals)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + spectrumColumns

	row := s.Pool.QueryRow(ctx, query,
		sp.ID, sp.MoleculeID, sp.Name, sp.Experiment, nuclei, sp.Frequency, sp.Solvent, sp.Standard, signals)

	created, err := scanSpectrum(row.Scan)
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

		return nil, fmt.Errorf("scanning created spectrum: %w", err)
	}

	s.notify("spectra", "insert", created.ID)

	return created, nil
}

// GetSpectrum fetches a spectrum by ID.
func (s *SpectrumStore) GetSpectrum(ctx context.Context, id string) (*models.Spectrum, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + spectrumColumns + ` FROM spectra WHERE id = $1`

	sp, err := scanSpectrum(s.Pool.QueryRow(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrSpectrumNotFound
		}

		return nil, fmt.Errorf("getting spectrum %s: %w", id, err)
	}

	return sp, nil
}

// ListSpectra returns the spectra stored for a molecule, newest first.
func (s *SpectrumStore) ListSpectra(ctx context.Context, moleculeID string, limit, offset int) ([]models.Spectrum, bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + spectrumColumns + ` FROM spectra
		WHERE molecule_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`

	rows, err := s.Pool.Query(ctx, query, moleculeID, limit+1, offset)
	if err != nil {
		return nil, false, fmt.Errorf("listing spectra for molecule %s: %w", moleculeID, err)
	}
	defer rows.Close()

	spectra := make([]models.Spectrum, 0, limit)

	for rows.Next() {
		sp, err := scanSpectrum(rows.Scan)
		if err != nil {
			return nil, false, fmt.Errorf("scanning spectrum: %w", err)
		}

		spectra = append(spectra, *sp)
	}

	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating spectra: %w", err)
	}

	hasMore := len(spectra) > limit
	if hasMore {
		spectra = spectra[:limit]
	}

	return spectra, hasMore, nil
}

// DeleteSpectrum removes a stored spectrum.
func (s *SpectrumStore) DeleteSpectrum(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, `DELETE FROM spectra WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting spectrum %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrSpectrumNotFound
	}

	s.notify("spectra", "delete", id)

	return nil
}
