// Package models defines data types for molecules, fragments, and spectra.
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/spectrakit/fragmentor/internal/chem"
)

// Molecule is a stored molecular graph.
type Molecule struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Atoms     []chem.Atom `json:"atoms"`
	Bonds     []chem.Bond `json:"bonds"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Graph rebuilds the in-memory molecule graph from the stored record.
// Atom order in the record fixes the graph's atom indices.
func (m *Molecule) Graph() (*chem.Molecule, error) {
	return buildGraph(m.Atoms, m.Bonds)
}

// buildGraph assembles a chem.Molecule from record slices, validating
// bond endpoints along the way.
func buildGraph(atoms []chem.Atom, bonds []chem.Bond) (*chem.Molecule, error) {
	g := chem.NewMolecule()

	for _, a := range atoms {
		g.AddAtom(a.Element)
	}

	for _, b := range bonds {
		if err := g.AddBond(b); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// FromGraph converts an in-memory molecule back into record slices.
func FromGraph(g *chem.Molecule) (atoms []chem.Atom, bonds []chem.Bond) {
	return g.Atoms(), g.Bonds()
}

// CreateMoleculeRequest is the payload for storing a new molecule.
type CreateMoleculeRequest struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Atoms []chem.Atom `json:"atoms"`
	Bonds []chem.Bond `json:"bonds"`
}

// Validate checks required fields and graph consistency.
// If ID is empty, a UUID is auto-generated.
func (r *CreateMoleculeRequest) Validate() error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	if len(r.ID) > 255 {
		return ErrFieldTooLong("id", 255)
	}

	if r.Name == "" {
		return ErrMissingName
	}

	if len(r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	if len(r.Atoms) == 0 {
		return ErrNoAtoms
	}

	for _, a := range r.Atoms {
		if a.Element == "" {
			return ErrMissingElement
		}
	}

	// Bond endpoint and duplicate checks come for free from the graph
	// construction.
	if _, err := buildGraph(r.Atoms, r.Bonds); err != nil {
		return err
	}

	return nil
}

// MoleculeSummary is a lightweight listing representation.
type MoleculeSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AtomCount int       `json:"atom_count"`
	BondCount int       `json:"bond_count"`
	CreatedAt time.Time `json:"created_at"`
}
