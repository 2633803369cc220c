package fragment

import (
	"fmt"

	"github.com/spectrakit/fragmentor/internal/chem"
)

// Node is a single entry of a connection tree: one atom of the source
// molecule (or a synthetic placeholder) at a fixed BFS sphere.
type Node struct {
	Key         int
	Atom        chem.Atom
	Sphere      int
	Placeholder bool

	parent        *Node
	bondToParent  chem.Bond
	hasParentBond bool
	children      []*Node
	cyclePartners []int
}

// Parent returns the node's tree parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's tree children in insertion order.
func (n *Node) Children() []*Node { return n.children }

// BondToParent returns the bond linking the node to its parent.
// The root has none.
func (n *Node) BondToParent() (chem.Bond, bool) {
	return n.bondToParent, n.hasParentBond
}

// CyclePartners returns the keys of nodes this node is linked to by
// recovered cycle edges.
func (n *Node) CyclePartners() []int { return n.cyclePartners }

func (n *Node) hasCyclePartner(key int) bool {
	for _, p := range n.cyclePartners {
		if p == key {
			return true
		}
	}

	return false
}

// CycleEdge records a molecule bond between two tree nodes that is not
// a parent-child edge. Each unordered key pair appears at most once.
type CycleEdge struct {
	KeyA int
	KeyB int
	Bond chem.Bond
}

// Tree is the output of a fragment traversal: a rooted spanning tree
// over a subset of a molecule's atoms, plus recovered cycle edges and
// optional placeholder leaves. Real node keys equal their source atom
// indices; placeholder keys are allocated above the source atom count.
type Tree struct {
	root          *Node
	nodes         map[int]*Node
	order         []int // node keys in insertion order
	cycles        []CycleEdge
	sourceAtomLen int
}

// NewTree creates a tree holding only the given root atom at sphere 0.
// sourceAtomLen is the atom count of the source molecule and seeds the
// placeholder key range.
func NewTree(root chem.Atom, sourceAtomLen int) *Tree {
	rootNode := &Node{Key: root.Index, Atom: root}

	return &Tree{
		root:          rootNode,
		nodes:         map[int]*Node{root.Index: rootNode},
		order:         []int{root.Index},
		sourceAtomLen: sourceAtomLen,
	}
}

// Root returns the sphere-0 node.
func (t *Tree) Root() *Node { return t.root }

// Node returns the node with the given key, or nil.
func (t *Tree) Node(key int) *Node { return t.nodes[key] }

// Len returns the number of nodes, placeholders included.
func (t *Tree) Len() int { return len(t.nodes) }

// Nodes returns all nodes in insertion order.
func (t *Tree) Nodes() []*Node {
	out := make([]*Node, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.nodes[key])
	}

	return out
}

// NodesInSphere returns the nodes at the given sphere in insertion order.
func (t *Tree) NodesInSphere(sphere int) []*Node {
	var out []*Node

	for _, key := range t.order {
		if n := t.nodes[key]; n.Sphere == sphere {
			out = append(out, n)
		}
	}

	return out
}

// MaxSphere returns the deepest sphere present in the tree.
func (t *Tree) MaxSphere() int {
	max := 0

	for _, n := range t.nodes {
		if n.Sphere > max {
			max = n.Sphere
		}
	}

	return max
}

// CycleEdges returns the recovered cycle edges in registration order.
func (t *Tree) CycleEdges() []CycleEdge {
	out := make([]CycleEdge, len(t.cycles))
	copy(out, t.cycles)

	return out
}

// AddChild attaches a new node for atom under the parent with the given
// key, linked by bond. The child's sphere is the parent's plus one.
func (t *Tree) AddChild(parentKey int, atom chem.Atom, key int, bond chem.Bond) error {
	parent := t.nodes[parentKey]
	if parent == nil {
		return fmt.Errorf("parent node %d not in tree", parentKey)
	}

	if _, exists := t.nodes[key]; exists {
		return fmt.Errorf("node %d already in tree", key)
	}

	child := &Node{
		Key:           key,
		Atom:          atom,
		Sphere:        parent.Sphere + 1,
		parent:        parent,
		bondToParent:  bond,
		hasParentBond: true,
	}

	parent.children = append(parent.children, child)
	t.nodes[key] = child
	t.order = append(t.order, key)

	return nil
}

// AddPlaceholder appends a synthetic leaf under the parent with the
// given key, linked by the bond that was cut. The placeholder's key is
// drawn from the unallocated range above the source atom count and is
// returned to the caller.
func (t *Tree) AddPlaceholder(parentKey int, bond chem.Bond) (int, error) {
	key := t.sourceAtomLen + len(t.nodes)

	atom := chem.Atom{Index: key, Element: chem.Placeholder}
	if err := t.AddChild(parentKey, atom, key, bond); err != nil {
		return 0, err
	}

	t.nodes[key].Placeholder = true

	return key, nil
}

// AddCycleEdge registers a symmetric cycle edge between two existing
// nodes. Parent-child pairs and already-registered pairs are skipped;
// the return value reports whether the edge was added.
func (t *Tree) AddCycleEdge(keyA, keyB int, bond chem.Bond) bool {
	if keyA == keyB {
		return false
	}

	a, b := t.nodes[keyA], t.nodes[keyB]
	if a == nil || b == nil {
		return false
	}

	// Already a tree edge.
	if a.parent == b || b.parent == a {
		return false
	}

	// Already registered, from either side.
	if a.hasCyclePartner(keyB) || b.hasCyclePartner(keyA) {
		return false
	}

	a.cyclePartners = append(a.cyclePartners, keyB)
	b.cyclePartners = append(b.cyclePartners, keyA)
	t.cycles = append(t.cycles, CycleEdge{KeyA: keyA, KeyB: keyB, Bond: bond})

	return true
}

// HasEdge reports whether the tree already represents a bond between
// the node with the given key and the atom with the given index, either
// as a tree edge or as a recovered cycle edge.
func (t *Tree) HasEdge(key, atomIndex int) bool {
	n := t.nodes[key]
	if n == nil {
		return false
	}

	if n.parent != nil && n.parent.Key == atomIndex {
		return true
	}

	for _, c := range n.children {
		if c.Key == atomIndex {
			return true
		}
	}

	return n.hasCyclePartner(atomIndex)
}
