// Package core: Graph-level node and edge management.
//
// The Graph mediates all structural mutation: nodes are created by Set,
// destroyed by Delete (which cascades incident edge removal in both
// directions), and linked through the name-based Connect/Disconnect/
// Connected wrappers that delegate to Node operations.

package core

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// Get returns the Node itself (not its payload).
// Returns ErrEmptyNodeName for an empty name, ErrNodeNotFound if absent.
// Complexity: O(1).
func (g *Graph) Get(name string) (*Node, error) {
	if name == "" {
		return nil, ErrEmptyNodeName
	}
	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return n, nil
}

// Set creates a node under name with the given payload, or updates the
// payload in place if the name already exists, leaving edges untouched.
// Returns ErrEmptyNodeName for an empty name.
// Complexity: O(1) amortized.
func (g *Graph) Set(name string, value any) error {
	if name == "" {
		return ErrEmptyNodeName
	}
	if n, ok := g.nodes[name]; ok {
		n.value = value

		return nil
	}
	g.nodes[name] = &Node{
		name:  name,
		value: value,
		out:   make(map[string]*Edge),
		in:    make(map[string]*Edge),
		graph: g,
	}

	return nil
}

// Has reports whether a node with the given name exists. O(1).
func (g *Graph) Has(name string) bool {
	_, ok := g.nodes[name]

	return ok
}

// Delete removes the node and every edge incident to it, in both
// directions, leaving no dangling references.
// Returns ErrNodeNotFound (or ErrEmptyNodeName) if name is absent.
// Complexity: O(deg(n)).
func (g *Graph) Delete(name string) error {
	n, err := g.Get(name)
	if err != nil {
		return err
	}

	// Drop the mirror of each owned edge from its destination's index.
	for _, e := range n.out {
		if dest, ok := g.nodes[e.To]; ok {
			delete(dest.in, name)
		}
	}
	// Drop each incoming edge from its source's owning set.
	for _, e := range n.in {
		if src, ok := g.nodes[e.From]; ok {
			delete(src.out, name)
		}
	}
	delete(g.nodes, name)

	return nil
}

// Connect creates an edge from src to dst with the given weight.
// Name-based wrapper over Node.Connect; returns ErrNodeNotFound if either
// name is absent, ErrEdgeExists on a duplicate ordered pair.
func (g *Graph) Connect(src, dst string, weight float64) error {
	s, err := g.Get(src)
	if err != nil {
		return err
	}
	d, err := g.Get(dst)
	if err != nil {
		return err
	}

	return s.Connect(d, weight)
}

// Disconnect removes the edge from src to dst.
// Returns ErrNodeNotFound if either name is absent, ErrEdgeNotFound if no
// edge exists.
func (g *Graph) Disconnect(src, dst string) error {
	s, err := g.Get(src)
	if err != nil {
		return err
	}
	d, err := g.Get(dst)
	if err != nil {
		return err
	}

	return s.Disconnect(d)
}

// Connected reports whether an edge from src to dst exists.
// Returns ErrNodeNotFound if either name is absent.
func (g *Graph) Connected(src, dst string) (bool, error) {
	s, err := g.Get(src)
	if err != nil {
		return false, err
	}
	d, err := g.Get(dst)
	if err != nil {
		return false, err
	}

	return s.Connected(d), nil
}

// Len returns the number of nodes. O(1).
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the total number of edges. O(V).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, n := range g.nodes {
		total += len(n.out)
	}

	return total
}

// Names returns all node names in sorted order.
// Complexity: O(V log V).
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Nodes produces a lazy sequence over all nodes in unspecified order.
// Mutating the node table while the sequence is being consumed is undefined.
func (g *Graph) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, n := range g.nodes {
			if !yield(n) {
				return
			}
		}
	}
}

// Edges returns all edges sorted by (From, To). Debug and test aid.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for _, n := range g.nodes {
		for _, e := range n.out {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// String renders the graph as "{ node, node, ... }" in sorted name order.
// Debug aid only.
func (g *Graph) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, name := range g.Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(g.nodes[name].String())
	}
	b.WriteString(" }")

	return b.String()
}
