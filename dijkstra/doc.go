// Package dijkstra provides lazy single-source shortest paths over
// core.Graph for strictly positive edge weights.
//
// New validates the whole edge set up front (any weight ≤ 0 fails with
// ErrNonPositiveWeight) and returns a Traversal that finalizes one node
// per Next call, in non-decreasing distance order. Each emission is a
// Step carrying the node, its distance, and the predecessor on the
// shortest-path tree; PathTo reconstructs full routes from those links.
// Unreachable nodes are never emitted — the sequence simply ends when
// the frontier empties.
//
// The frontier is a binary heap with lazy decrease-key: improvements
// push fresh offers and stale ones are discarded at pop time, so a full
// drain costs O((V+E) log V). Ties between equal-distance nodes resolve
// arbitrarily.
//
// Errors: ErrGraphNil, ErrStartNotFound, ErrNonPositiveWeight; context
// cancellation surfaces through Err.
package dijkstra
