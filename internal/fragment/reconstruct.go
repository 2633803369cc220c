package fragment

import (
	"errors"
	"fmt"

	"github.com/spectrakit/fragmentor/internal/chem"
)

// ErrNoBondToParent signals a structurally broken tree: a non-root node
// without the bond it was created with. Reconstruction fails loudly on
// it instead of silently dropping the node.
var ErrNoBondToParent = errors.New("non-root tree node has no bond to parent")

// Materialize rebuilds a standalone molecule from a connection tree.
// The output contains one atom per tree node (placeholders included)
// and one bond per tree edge plus each deduplicated cycle edge.
func Materialize(tree *Tree) (*chem.Molecule, error) {
	m := chem.NewMolecule()
	if err := Extend(tree, m, nil, nil); err != nil {
		return nil, err
	}

	return m, nil
}

// Extend reconstructs a connection tree into an existing graph. When
// anchorIndex and anchorBond are both given, the tree's root is linked
// to the atom at anchorIndex by a copy of anchorBond; otherwise the
// substructure is added unattached.
func Extend(tree *Tree, dst MutableGraph, anchorIndex *int, anchorBond *chem.Bond) error {
	if tree == nil {
		return errors.New("nil connection tree")
	}

	if dst == nil {
		return errors.New("nil destination graph")
	}

	// Tree keys are not valid indices in dst; track the mapping.
	added := make(map[int]int, tree.Len())

	root := tree.Root()
	rootIdx := dst.AddAtom(root.Atom.Element)
	added[root.Key] = rootIdx

	if anchorIndex != nil && anchorBond != nil {
		link := chem.Bond{
			From:     *anchorIndex,
			To:       rootIdx,
			Order:    anchorBond.Order,
			InRing:   anchorBond.InRing,
			Aromatic: anchorBond.Aromatic,
		}
		if err := dst.AddBond(link); err != nil {
			return fmt.Errorf("linking fragment to anchor %d: %w", *anchorIndex, err)
		}
	}

	// Tree edges sphere by sphere, so every parent atom exists before
	// its children.
	maxSphere := tree.MaxSphere()
	for s := 1; s <= maxSphere; s++ {
		for _, node := range tree.NodesInSphere(s) {
			bond, ok := node.BondToParent()
			if !ok {
				return fmt.Errorf("%w: node %d at sphere %d", ErrNoBondToParent, node.Key, node.Sphere)
			}

			idx := dst.AddAtom(node.Atom.Element)
			added[node.Key] = idx

			copied := chem.Bond{
				From:     added[node.Parent().Key],
				To:       idx,
				Order:    bond.Order,
				InRing:   bond.InRing,
				Aromatic: bond.Aromatic,
			}
			if err := dst.AddBond(copied); err != nil {
				return fmt.Errorf("adding bond for node %d: %w", node.Key, err)
			}
		}
	}

	// Cycle edges last, once all endpoint atoms exist. An existing bond
	// between the endpoints means the edge was already materialized;
	// skip it silently.
	for _, ce := range tree.CycleEdges() {
		from, okA := added[ce.KeyA]
		to, okB := added[ce.KeyB]

		if !okA || !okB {
			return fmt.Errorf("cycle edge %d-%d references unknown node", ce.KeyA, ce.KeyB)
		}

		if _, exists := dst.BondBetween(from, to); exists {
			continue
		}

		copied := chem.Bond{
			From:     from,
			To:       to,
			Order:    ce.Bond.Order,
			InRing:   ce.Bond.InRing,
			Aromatic: ce.Bond.Aromatic,
		}
		if err := dst.AddBond(copied); err != nil {
			return fmt.Errorf("closing cycle %d-%d: %w", ce.KeyA, ce.KeyB, err)
		}
	}

	return nil
}

// BuildFragment composes Traverse and Materialize: it extracts the
// neighborhood of the atom at rootIndex and returns it as a standalone
// molecule.
func BuildFragment(g Graph, rootIndex, maxSphere int, excluded map[int]bool, placeholders bool) (*chem.Molecule, error) {
	tree, err := Traverse(g, rootIndex, maxSphere, excluded, placeholders)
	if err != nil {
		return nil, err
	}

	return Materialize(tree)
}
