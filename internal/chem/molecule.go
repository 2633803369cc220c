package chem

import (
	"fmt"
)

// Molecule is an undirected molecular graph backed by adjacency lists.
// Atom indices are dense and assigned in insertion order. The zero
// value is an empty molecule ready for use.
type Molecule struct {
	atoms []Atom
	bonds []Bond
	adj   map[int][]int // atom index -> indices into bonds
}

// NewMolecule returns an empty molecule.
func NewMolecule() *Molecule {
	return &Molecule{adj: make(map[int][]int)}
}

// AddAtom appends an atom with the given element and returns its index.
func (m *Molecule) AddAtom(element string) int {
	idx := len(m.atoms)
	m.atoms = append(m.atoms, Atom{Index: idx, Element: element})

	if m.adj == nil {
		m.adj = make(map[int][]int)
	}

	return idx
}

// AddBond inserts a bond between two existing atoms. Self-bonds and
// duplicate bonds are rejected.
func (m *Molecule) AddBond(b Bond) error {
	if b.From == b.To {
		return fmt.Errorf("bond endpoints must differ, got %d", b.From)
	}

	if b.From < 0 || b.From >= len(m.atoms) || b.To < 0 || b.To >= len(m.atoms) {
		return fmt.Errorf("bond %d-%d references atom outside molecule of %d atoms", b.From, b.To, len(m.atoms))
	}

	if _, ok := m.BondBetween(b.From, b.To); ok {
		return fmt.Errorf("bond %d-%d already exists", b.From, b.To)
	}

	if b.Order < 1 {
		b.Order = 1
	}

	bi := len(m.bonds)
	m.bonds = append(m.bonds, b)
	m.adj[b.From] = append(m.adj[b.From], bi)
	m.adj[b.To] = append(m.adj[b.To], bi)

	return nil
}

// AtomCount returns the number of atoms.
func (m *Molecule) AtomCount() int { return len(m.atoms) }

// BondCount returns the number of bonds.
func (m *Molecule) BondCount() int { return len(m.bonds) }

// AtomAt returns the atom at the given index.
func (m *Molecule) AtomAt(index int) (Atom, bool) {
	if index < 0 || index >= len(m.atoms) {
		return Atom{}, false
	}

	return m.atoms[index], true
}

// Atoms returns all atoms in index order. The slice is a copy.
func (m *Molecule) Atoms() []Atom {
	out := make([]Atom, len(m.atoms))
	copy(out, m.atoms)

	return out
}

// Bonds returns all bonds in insertion order. The slice is a copy.
func (m *Molecule) Bonds() []Bond {
	out := make([]Bond, len(m.bonds))
	copy(out, m.bonds)

	return out
}

// Neighbors returns the atoms directly bonded to the atom at index,
// in bond insertion order.
func (m *Molecule) Neighbors(index int) []Atom {
	bondIdxs := m.adj[index]
	out := make([]Atom, 0, len(bondIdxs))

	for _, bi := range bondIdxs {
		out = append(out, m.atoms[m.bonds[bi].Other(index)])
	}

	return out
}

// BondBetween returns the bond connecting the two atoms, if any.
func (m *Molecule) BondBetween(a, b int) (Bond, bool) {
	for _, bi := range m.adj[a] {
		bond := m.bonds[bi]
		if bond.Other(a) == b {
			return bond, true
		}
	}

	return Bond{}, false
}
