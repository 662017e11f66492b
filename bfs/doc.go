// Package bfs implements lazy breadth-first traversal over a core.Graph,
// exposing visit order, unweighted distances, and parent links.
//
// What:
//
//   - New(g, start, opts...) prepares a Traversal: a finite, single-pass
//     sequence emitting one reachable node per Next call, in layers of
//     non-decreasing BFS depth. Within a layer, nodes appear in the order
//     they were discovered, which core's sorted edge enumeration makes
//     deterministic.
//   - Spans(g, start) drains a traversal and reports whether the start
//     node reaches every node in the graph.
//   - Traversal.PathTo(dest) reconstructs the discovery path start→dest
//     from parent links.
//
// Laziness contract:
//
//   - All scratch state (queue, seen set, depth/parent maps) lives on the
//     Traversal, created fresh per call; nothing is stored on nodes, so
//     concurrent read-only traversals are independent.
//   - Mutating the graph while a Traversal is still being consumed is
//     undefined behavior.
//
// Options:
//
//   - WithContext(ctx)        cancellation, checked once per Next
//   - WithOnEnqueue(fn)       discovery hook (name, depth)
//   - WithOnVisit(fn)         emission hook; an error stops the traversal
//   - WithMaxDepth(d)         stop exploring beyond depth d (0 = no limit)
//   - WithFilterNeighbor(fn)  skip edges by predicate
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrStartNotFound     start name not in graph
//   - ErrOptionViolation   invalid option value
//   - context.Canceled     via Err() after cancellation
//
// Complexity: a full drain costs O(V + E) time and O(V) space.
package bfs
