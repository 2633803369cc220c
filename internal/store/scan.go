package store

import (
	"encoding/json"
	"fmt"

	"github.com/spectrakit/fragmentor/internal/models"
)

// moleculeColumns lists the columns selected for molecule queries.
const moleculeColumns = `id, name, atoms, bonds, created_at, updated_at`

// fragmentColumns lists the columns selected for fragment queries.
const fragmentColumns = `id, molecule_id, root_atom, max_sphere, excluded,
	placeholders, atoms, bonds, created_at`

// spectrumColumns lists the columns selected for spectrum queries.
const spectrumColumns = `id, molecule_id, name, experiment, nuclei,
	frequency_mhz, solvent, standard, signals, created_at`

// scanMolecule scans a single row into a models.Molecule.
func scanMolecule(scan func(dest ...any) error) (*models.Molecule, error) {
	var m models.Molecule
	var atoms, bonds []byte

	err := scan(
		&m.ID,
		&m.Name,
		&atoms,
		&bonds,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(atoms, &m.Atoms); err != nil {
		return nil, fmt.Errorf("unmarshalling molecule atoms: %w", err)
	}

	if err := json.Unmarshal(bonds, &m.Bonds); err != nil {
		return nil, fmt.Errorf("unmarshalling molecule bonds: %w", err)
	}

	return &m, nil
}

// scanFragment scans a single row into a models.Fragment.
func scanFragment(scan func(dest ...any) error) (*models.Fragment, error) {
	var f models.Fragment
	var excluded, atoms, bonds []byte

	err := scan(
		&f.ID,
		&f.MoleculeID,
		&f.RootAtom,
		&f.MaxSphere,
		&excluded,
		&f.Placeholders,
		&atoms,
		&bonds,
		&f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(excluded, &f.Excluded); err != nil {
		return nil, fmt.Errorf("unmarshalling fragment exclusions: %w", err)
	}

	if err := json.Unmarshal(atoms, &f.Atoms); err != nil {
		return nil, fmt.Errorf("unmarshalling fragment atoms: %w", err)
	}

	if err := json.Unmarshal(bonds, &f.Bonds); err != nil {
		return nil, fmt.Errorf("unmarshalling fragment bonds: %w", err)
	}

	return &f, nil
}

// scanSpectrum scans a single row into a models.Spectrum.
func scanSpectrum(scan func(dest ...any) error) (*models.Spectrum, error) {
	var s models.Spectrum
	var nuclei, signals []byte

	err := scan(
		&s.ID,
		&s.MoleculeID,
		&s.Name,
		&s.Experiment,
		&nuclei,
		&s.Frequency,
		&s.Solvent,
		&s.Standard,
		&signals,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(nuclei, &s.Nuclei); err != nil {
		return nil, fmt.Errorf("unmarshalling spectrum nuclei: %w", err)
	}

	if err := json.Unmarshal(signals, &s.Signals); err != nil {
		return nil, fmt.Errorf("unmarshalling spectrum signals: %w", err)
	}

	return &s, nil
}

// marshalJSON marshals v for a jsonb column, normalizing nil slices to
// empty arrays so scans round-trip cleanly.
func marshalJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshalling jsonb value: %w", err)
	}

	if string(data) == "null" {
		return []byte("[]"), nil
	}

	return data, nil
}
