// Package core defines the central Graph, Node, and Edge types and the
// mutation primitives for building directed, weighted graphs.
//
// A Graph owns all nodes in a name-keyed table; each Node owns its outgoing
// edges and keeps a non-owning index of incoming edges so the structure can
// be walked against edge direction. Edges record endpoint names rather than
// node pointers, so the mirrored incoming index is a derived reverse lookup
// and never a second ownership path.
//
// This file declares Node, Edge, Graph, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrEmptyNodeName - node name is the empty string.
//	ErrNodeNotFound  - requested node does not exist.
//	ErrEdgeExists    - connect attempted on an already-linked ordered pair.
//	ErrEdgeNotFound  - disconnect attempted where no edge exists.
//	ErrStructure     - CheckStructure found an outgoing/incoming asymmetry.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeName indicates that the provided node name is empty.
	ErrEmptyNodeName = errors.New("core: node name is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeExists indicates a connect onto an ordered pair that is already linked.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates a disconnect where no edge exists.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrStructure indicates a violated symmetry between a node's outgoing
	// edges and its neighbors' incoming back-references.
	ErrStructure = errors.New("core: structural invariant violated")
)

// Edge is an immutable directed, weighted link between two node identities.
//
// From and To are node names, not pointers: the source node owns the Edge in
// its outgoing set, and the destination holds the same *Edge in its incoming
// index. Storing names keeps the mirror a lookup, not a reference cycle.
type Edge struct {
	// From is the source node name.
	From string

	// To is the destination node name.
	To string

	// Weight is the cost of traversing the edge.
	Weight float64
}

// Node is a named vertex carrying an opaque payload.
//
// A Node owns its outgoing edges (out, keyed by destination name, at most
// one per ordered pair) and indexes its incoming edges (in, keyed by source
// name, mirroring the exact same *Edge values). Traversal working state is
// deliberately NOT stored here; every traversal carries its own scratch
// maps, so two traversals over one graph never interfere.
type Node struct {
	name  string
	value any

	out map[string]*Edge // destination name → owned edge
	in  map[string]*Edge // source name → mirror of the source's edge

	// graph is the owning arena; needed to resolve edge endpoint names
	// back into *Node during enumeration.
	graph *Graph
}

// Graph is the in-memory directed weighted graph container.
//
// It owns the name → Node table and is the sole authority for creating and
// destroying nodes and edges. Insertion order carries no meaning; all
// enumeration over the table is unordered unless stated otherwise.
//
// The Graph is not safe for concurrent use. Mutating the node or edge sets
// while a traversal sequence from bfs, dfs or dijkstra is still being
// consumed is undefined behavior.
type Graph struct {
	nodes map[string]*Node
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}
