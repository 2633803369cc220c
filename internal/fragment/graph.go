package fragment

import "github.com/spectrakit/fragmentor/internal/chem"

// Graph is the read capability the fragmenter needs from a molecule.
// *chem.Molecule satisfies it; tests may supply any implementation.
type Graph interface {
	AtomCount() int
	AtomAt(index int) (chem.Atom, bool)
	Neighbors(index int) []chem.Atom
	BondBetween(a, b int) (chem.Bond, bool)
}

// MutableGraph extends Graph with the mutations used during
// reconstruction. AddAtom assigns and returns the new atom's index;
// bond endpoints refer to indices in the destination graph.
type MutableGraph interface {
	Graph
	AddAtom(element string) int
	AddBond(b chem.Bond) error
}

// Compile-time check: the in-memory molecule is a usable graph.
var _ MutableGraph = (*chem.Molecule)(nil)
