// Package fragment extracts sphere-limited neighborhoods of molecular
// graphs and reconstructs standalone molecules from them.
//
// Traverse performs a breadth-first walk from a root atom, bounded by a
// sphere limit but forced past it across chemically significant bonds
// (hetero-hetero, triple-or-higher, and polyfunctional carbon-hetero
// bonds). The walk yields a connection tree: a spanning tree over the
// visited atoms, augmented by a recovery pass with the cycle edges the
// spanning tree missed, and optionally by placeholder leaves marking
// bonds cut at the fragment boundary.
//
// Materialize and Extend invert the extraction, rebuilding a molecule
// from a connection tree, either standalone or linked to an anchor atom
// of an existing molecule.
package fragment
