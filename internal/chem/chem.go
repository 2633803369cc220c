// Package chem provides the in-memory molecule graph the fragmenter
// operates on: atoms with an element symbol and index, bonds with an
// order plus ring and aromaticity flags, and adjacency queries.
package chem

// Element symbols with special meaning to the fragmenter.
const (
	Carbon   = "C"
	Hydrogen = "H"

	// Placeholder is the pseudo-element assigned to synthetic atoms
	// marking bonds cut by the sphere limit.
	Placeholder = "R"
)

// IsCarbon reports whether the symbol denotes carbon.
func IsCarbon(element string) bool { return element == Carbon }

// IsHetero reports whether the symbol denotes a heteroatom,
// i.e. anything that is neither carbon nor hydrogen.
func IsHetero(element string) bool {
	return element != Carbon && element != Hydrogen
}

// Atom is a vertex of a molecule graph. Index is unique within its
// molecule and doubles as the atom's identity in all fragmenter APIs.
type Atom struct {
	Index   int    `json:"index"`
	Element string `json:"element"`
}

// Bond is an edge of a molecule graph between the atoms at indices
// From and To. Order is the numeric bond order (1 single, 2 double,
// 3 and above triple-or-higher).
type Bond struct {
	From     int  `json:"from"`
	To       int  `json:"to"`
	Order    int  `json:"order"`
	InRing   bool `json:"in_ring"`
	Aromatic bool `json:"aromatic"`
}

// Other returns the endpoint of b that is not index.
func (b Bond) Other(index int) int {
	if b.From == index {
		return b.To
	}

	return b.From
}
