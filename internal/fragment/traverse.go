package fragment

import (
	"errors"
	"fmt"

	"github.com/spectrakit/fragmentor/internal/chem"
)

// Sentinel errors for traversal preconditions.
var (
	ErrNilGraph       = errors.New("nil molecule graph")
	ErrRootOutOfRange = errors.New("root atom outside molecule")
	ErrRootExcluded   = errors.New("root atom is excluded")
	ErrNegativeSphere = errors.New("max sphere must not be negative")
)

// queueEntry pairs an atom index with its BFS sphere.
type queueEntry struct {
	atom   int
	sphere int
}

// Traverse extracts the sphere-limited neighborhood of the atom at
// rootIndex as a connection tree. Atoms listed in excluded are never
// entered; excluded indices outside the molecule are ignored. Bonds
// selected by the retention policy are followed past maxSphere. When
// placeholders is true, every bond cut at the fragment boundary is
// marked by a synthetic leaf node.
func Traverse(g Graph, rootIndex, maxSphere int, excluded map[int]bool, placeholders bool) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	if maxSphere < 0 {
		return nil, ErrNegativeSphere
	}

	root, ok := g.AtomAt(rootIndex)
	if !ok {
		return nil, fmt.Errorf("%w: index %d, %d atoms", ErrRootOutOfRange, rootIndex, g.AtomCount())
	}

	if excluded[rootIndex] {
		return nil, fmt.Errorf("%w: index %d", ErrRootExcluded, rootIndex)
	}

	tree := NewTree(root, g.AtomCount())

	// Iterative BFS building the spanning tree. Cycle edges are
	// deliberately deferred to the recovery pass below.
	queue := []queueEntry{{atom: rootIndex, sphere: 0}}
	queued := map[int]bool{rootIndex: true}
	visited := make(map[int]bool)

	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]
		visited[entry.atom] = true

		for _, neighbor := range g.Neighbors(entry.atom) {
			if excluded[neighbor.Index] {
				continue
			}

			bond, ok := g.BondBetween(entry.atom, neighbor.Index)
			if !ok {
				continue
			}

			if !retain(g, entry.atom, neighbor, bond) && entry.sphere >= maxSphere {
				continue
			}

			if visited[neighbor.Index] || queued[neighbor.Index] {
				continue
			}

			queue = append(queue, queueEntry{atom: neighbor.Index, sphere: entry.sphere + 1})
			queued[neighbor.Index] = true

			if err := tree.AddChild(entry.atom, neighbor, neighbor.Index, bond); err != nil {
				return nil, fmt.Errorf("extending tree: %w", err)
			}
		}
	}

	recoverCycles(g, tree)

	if placeholders {
		if err := injectPlaceholders(g, tree); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

// retain decides whether the bond between the atom at index a and
// neighbor must survive the sphere cutoff. It holds for bonds between
// two heteroatoms, for bonds of order three or higher, and for
// carbon-hetero bonds at polyfunctional carbons (two or more
// heteroatom neighbors in total).
func retain(g Graph, a int, neighbor chem.Atom, bond chem.Bond) bool {
	atom, ok := g.AtomAt(a)
	if !ok {
		return false
	}

	heteroA := chem.IsHetero(atom.Element)
	heteroB := chem.IsHetero(neighbor.Element)

	if heteroA && heteroB {
		return true
	}

	if bond.Order >= 3 {
		return true
	}

	var carbon int

	switch {
	case chem.IsCarbon(atom.Element) && heteroB:
		carbon = atom.Index
	case heteroA && chem.IsCarbon(neighbor.Element):
		carbon = neighbor.Index
	default:
		return false
	}

	heteroCount := 0

	for _, n := range g.Neighbors(carbon) {
		if chem.IsHetero(n.Element) {
			heteroCount++
		}
	}

	return heteroCount >= 2
}

// recoverCycles re-attaches molecule bonds the spanning tree missed:
// same-sphere edges and edges between consecutive spheres that are not
// parent-child links. Registration is idempotent, so revisiting a pair
// from the other side's sphere iteration is harmless.
func recoverCycles(g Graph, tree *Tree) {
	maxSphere := tree.MaxSphere()

	for s := 0; s <= maxSphere; s++ {
		inSphere := tree.NodesInSphere(s)
		nextSphere := tree.NodesInSphere(s + 1)

		for _, a := range inSphere {
			for _, b := range inSphere {
				if a.Key >= b.Key {
					continue
				}

				if bond, ok := g.BondBetween(a.Atom.Index, b.Atom.Index); ok {
					tree.AddCycleEdge(a.Key, b.Key, bond)
				}
			}

			for _, b := range nextSphere {
				if bond, ok := g.BondBetween(a.Atom.Index, b.Atom.Index); ok {
					tree.AddCycleEdge(a.Key, b.Key, bond)
				}
			}
		}
	}
}

// injectPlaceholders appends one synthetic leaf for every molecule
// neighbor of a tree node that the tree does not represent, preserving
// the local connectivity shape at the fragment boundary.
func injectPlaceholders(g Graph, tree *Tree) error {
	for _, node := range tree.Nodes() {
		if node.Placeholder {
			continue
		}

		for _, neighbor := range g.Neighbors(node.Atom.Index) {
			if tree.HasEdge(node.Key, neighbor.Index) {
				continue
			}

			bond, ok := g.BondBetween(node.Atom.Index, neighbor.Index)
			if !ok {
				continue
			}

			if _, err := tree.AddPlaceholder(node.Key, bond); err != nil {
				return fmt.Errorf("injecting placeholder: %w", err)
			}
		}
	}

	return nil
}
