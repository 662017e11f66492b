// Package core provides the in-memory directed, weighted graph container:
// a name-keyed node table with per-node edge ownership and a mirrored
// incoming-edge index.
//
// The model G = (V,E):
//
//   - Every edge is directed and weighted; at most one edge per ordered
//     (source, destination) pair.
//   - A Node owns its outgoing edges and indexes its incoming edges; both
//     sides reference the same Edge value, and every mutation keeps the two
//     sides symmetric (CheckStructure validates this).
//   - Edges store endpoint names, not node pointers, so the incoming index
//     is a derived reverse lookup and the structure carries no reference
//     cycles.
//   - Cycles in the graph itself are tolerated; nothing enforces acyclicity.
//
// Core methods:
//
//	// Node lifecycle
//	Set(name string, value any) error   // O(1): create or update payload in place
//	Get(name string) (*Node, error)     // O(1): the Node itself, not its payload
//	Has(name string) bool               // O(1)
//	Delete(name string) error           // O(deg(n)): cascades incident edges
//
//	// Edge lifecycle (name-based wrappers over Node operations)
//	Connect(src, dst string, weight float64) error
//	Disconnect(src, dst string) error
//	Connected(src, dst string) (bool, error)
//
//	// Enumeration
//	Len() int, EdgeCount() int
//	Names() []string                    // sorted
//	Nodes() iter.Seq[*Node]             // lazy, unordered
//	Edges() []Edge                      // sorted by (From, To)
//
//	// Validation
//	CheckStructure() error              // O(V+E) mirror-symmetry assertion
//
// Node methods:
//
//	Connect(dest *Node, weight float64) error
//	Disconnect(dest *Node) error
//	Connected(dest *Node) bool
//	AllEdges() iter.Seq2[*Node, float64]  // lazy (destination, weight) pairs
//	InEdges() iter.Seq2[*Node, float64]   // reverse walk over back-references
//	OutDegree() int, InDegree() int, Weight(dest *Node) (float64, bool)
//
// Traversals (bfs, dfs, dijkstra packages) keep all of their working state
// in per-call scratch maps, never on Node, so concurrent read-only
// traversals of one graph are independent. The Graph itself is not
// synchronized: no mutation may overlap a traversal still being consumed.
//
// Errors:
//
//	ErrEmptyNodeName – zero-length node name
//	ErrNodeNotFound  – missing node
//	ErrEdgeExists    – duplicate ordered pair on Connect
//	ErrEdgeNotFound  – missing edge on Disconnect
//	ErrStructure     – outgoing/incoming asymmetry found by CheckStructure
package core
