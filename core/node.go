// Package core: Node-level edge management and enumeration.
//
// A connect registers the new edge in the source's outgoing set and the
// destination's incoming index in the same step; a disconnect removes both
// references. Every mutation therefore preserves the mirror symmetry that
// CheckStructure validates.

package core

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// Name returns the unique identity of the node within its Graph.
func (n *Node) Name() string { return n.name }

// Value returns the opaque payload stored on the node.
func (n *Node) Value() any { return n.value }

// SetValue replaces the payload in place without disturbing edges.
func (n *Node) SetValue(v any) { n.value = v }

// Connect creates a directed edge from n to dest with the given weight.
// Returns ErrNodeNotFound if dest is nil or belongs to another graph,
// ErrEdgeExists if an edge to dest already exists.
// Complexity: O(1) amortized.
func (n *Node) Connect(dest *Node, weight float64) error {
	// Reject destinations outside the owning arena: a cross-graph edge
	// could never be mirrored consistently.
	if dest == nil || dest.graph != n.graph {
		return fmt.Errorf("connect %q: destination: %w", n.name, ErrNodeNotFound)
	}
	// At most one outgoing edge per ordered pair.
	if _, dup := n.out[dest.name]; dup {
		return fmt.Errorf("connect %q→%q: %w", n.name, dest.name, ErrEdgeExists)
	}

	e := &Edge{From: n.name, To: dest.name, Weight: weight}
	// Register the one Edge value on both endpoints: owned here,
	// indexed there.
	n.out[dest.name] = e
	dest.in[n.name] = e

	return nil
}

// Disconnect removes the edge from n to dest, in both directions.
// Returns ErrNodeNotFound for a nil/foreign dest, ErrEdgeNotFound if no
// edge exists.
// Complexity: O(1).
func (n *Node) Disconnect(dest *Node) error {
	if dest == nil || dest.graph != n.graph {
		return fmt.Errorf("disconnect %q: destination: %w", n.name, ErrNodeNotFound)
	}
	if _, ok := n.out[dest.name]; !ok {
		return fmt.Errorf("disconnect %q→%q: %w", n.name, dest.name, ErrEdgeNotFound)
	}

	delete(n.out, dest.name)
	delete(dest.in, n.name)

	return nil
}

// Connected reports whether an outgoing edge from n to dest exists.
// Complexity: O(1).
func (n *Node) Connected(dest *Node) bool {
	if dest == nil {
		return false
	}
	_, ok := n.out[dest.name]

	return ok
}

// AllEdges produces a lazy, finite sequence of (destination, weight) pairs
// over the current outgoing set, in ascending destination-name order so
// traversals built on it are deterministic.
// Each call yields a fresh sequence reflecting the set at call time;
// mutating the edge set while the sequence is being consumed is undefined.
// Complexity: O(d log d) for the name sort, then O(1) per step.
func (n *Node) AllEdges() iter.Seq2[*Node, float64] {
	return func(yield func(*Node, float64) bool) {
		for _, to := range sortedKeys(n.out) {
			dest := n.graph.nodes[to]
			if dest == nil {
				// Dangling endpoint; CheckStructure reports these.
				continue
			}
			if !yield(dest, n.out[to].Weight) {
				return
			}
		}
	}
}

// InEdges produces a lazy, finite sequence of (source, weight) pairs over
// the incoming back-reference index, enabling walks against edge direction.
// Same ordering and mutation caveats as AllEdges.
func (n *Node) InEdges() iter.Seq2[*Node, float64] {
	return func(yield func(*Node, float64) bool) {
		for _, from := range sortedKeys(n.in) {
			src := n.graph.nodes[from]
			if src == nil {
				continue
			}
			if !yield(src, n.in[from].Weight) {
				return
			}
		}
	}
}

// sortedKeys snapshots the edge-map keys in ascending order.
func sortedKeys(m map[string]*Edge) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// OutDegree returns the number of outgoing edges. O(1).
func (n *Node) OutDegree() int { return len(n.out) }

// InDegree returns the number of incoming edges. O(1).
func (n *Node) InDegree() int { return len(n.in) }

// Weight returns the weight of the edge from n to dest, or false if no
// such edge exists. Complexity: O(1).
func (n *Node) Weight(dest *Node) (float64, bool) {
	if dest == nil {
		return 0, false
	}
	e, ok := n.out[dest.name]
	if !ok {
		return 0, false
	}

	return e.Weight, true
}

// String renders the node as "(name/value [w→dest, ...])" with destinations
// sorted for stable output. Debug aid only.
func (n *Node) String() string {
	dests := sortedKeys(n.out)

	var b strings.Builder
	fmt.Fprintf(&b, "(%s/%v [", n.name, n.value)
	for i, to := range dests {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g→%s", n.out[to].Weight, to)
	}
	b.WriteString("])")

	return b.String()
}
