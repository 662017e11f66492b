// Package dfs provides lazy depth-first traversal over core.Graph.
//
// What it offers:
//   - New: a traversal emitting nodes in recursive finishing order — each
//     node appears only after every node reachable through it. On an
//     acyclic graph the emission is a topological order, bottom-up.
//   - NewIterative: an explicit-stack variant that rescans the top node's
//     edge set on every step. It finishes nodes in the same order as New
//     under the stable edge enumeration core provides, at a higher
//     per-node cost; it exists for callers that want the traversal to
//     observe edges added behind the frontier mid-walk.
//   - Options via WithContext, WithOnDiscover, WithFilterNeighbor.
//
// The sequence is finite and single-pass: call Next until it returns
// false, then check Err. Discovery state (Visited, Finished, Parent) is
// held on the Traversal, never on the graph, so any number of traversals
// may run over one graph — though none may survive a graph mutation.
//
// Errors: ErrGraphNil, ErrStartNotFound; hook errors and context
// cancellation surface through Err.
//
// Complexity: O(V+E) for a full drain with New; the rescan variant adds
// an O(d) edge scan per step at a node of out-degree d.
package dfs
