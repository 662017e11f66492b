package bfs

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// item pairs a discovered node with its BFS depth.
type item struct {
	node  *core.Node
	depth int
}

// Traversal is a lazy breadth-first sequence over the nodes reachable from
// a start node. All working state (queue, seen set, depth and parent maps)
// lives on the Traversal itself, so independent traversals over one graph
// never interfere; mutating the graph mid-drain is undefined behavior.
//
// The discovery tree (Visited / Depth / Parent) fills in as the sequence
// advances and is complete once Next has returned false.
type Traversal struct {
	graph  *core.Graph
	opts   Options
	queue  []item
	seen   map[string]bool
	depth  map[string]int
	parent map[string]string
	err    error
}

// New prepares a breadth-first traversal of g starting from startName.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options.
// Complexity of a full drain: O(V + E) plus hook cost.
func New(g *core.Graph, startName string, opts ...Option) (*Traversal, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, err := g.Get(startName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, startName)
	}

	n := g.Len()
	t := &Traversal{
		graph:  g,
		opts:   o,
		queue:  make([]item, 0, n),
		seen:   make(map[string]bool, n),
		depth:  make(map[string]int, n),
		parent: make(map[string]string, n),
	}
	t.enqueue(start, 0, "")

	return t, nil
}

// Next advances the traversal by one node. It dequeues the head, discovers
// and queues its unseen neighbors, and emits the head. Returns false once
// the queue is empty or the traversal stopped on an error (see Err).
func (t *Traversal) Next() (*core.Node, bool) {
	if t.err != nil || len(t.queue) == 0 {
		return nil, false
	}
	if err := t.opts.Ctx.Err(); err != nil {
		t.err = err

		return nil, false
	}

	head := t.queue[0]
	t.queue = t.queue[1:]

	// Discover this layer's successors before emitting the head, so the
	// queue always holds the full frontier.
	if t.opts.MaxDepth == 0 || head.depth < t.opts.MaxDepth {
		for dest := range head.node.AllEdges() {
			if t.seen[dest.Name()] {
				continue
			}
			if !t.opts.FilterNeighbor(head.node.Name(), dest.Name()) {
				continue
			}
			t.enqueue(dest, head.depth+1, head.node.Name())
		}
	}

	if err := t.opts.OnVisit(head.node.Name(), head.depth); err != nil {
		t.err = fmt.Errorf("bfs: OnVisit error at %q: %w", head.node.Name(), err)

		return nil, false
	}

	return head.node, true
}

// enqueue marks n discovered at depth d, records its parent, fires
// OnEnqueue, and appends it to the queue.
func (t *Traversal) enqueue(n *core.Node, d int, parent string) {
	t.seen[n.Name()] = true
	t.depth[n.Name()] = d
	if parent != "" {
		t.parent[n.Name()] = parent
	}
	t.opts.OnEnqueue(n.Name(), d)
	t.queue = append(t.queue, item{node: n, depth: d})
}

// Err reports the error that stopped the traversal, if any.
func (t *Traversal) Err() error { return t.err }

// Visited reports whether name has been discovered so far.
func (t *Traversal) Visited(name string) bool { return t.seen[name] }

// Depth returns the BFS distance of name from the start, if discovered.
func (t *Traversal) Depth(name string) (int, bool) {
	d, ok := t.depth[name]

	return d, ok
}

// Parent returns the node from which name was first discovered.
// The start node has no parent.
func (t *Traversal) Parent(name string) (string, bool) {
	p, ok := t.parent[name]

	return p, ok
}

// Rest drains the remaining sequence into a slice. Combined with New this
// gives the eager order: nodes reachable from start, layer by layer.
func (t *Traversal) Rest() []*core.Node {
	var out []*core.Node
	for {
		n, ok := t.Next()
		if !ok {
			break
		}
		out = append(out, n)
	}

	return out
}

// PathTo reconstructs the discovery path from the start node to dest by
// following parent links. Valid once dest has been discovered; returns an
// error if dest was never reached.
func (t *Traversal) PathTo(dest string) ([]string, error) {
	if !t.seen[dest] {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := t.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Spans reports whether every node in g is reachable from startName: it
// drains a fresh traversal and checks that no node was left undiscovered.
// Complexity: O(V + E).
func Spans(g *core.Graph, startName string) (bool, error) {
	t, err := New(g, startName)
	if err != nil {
		return false, err
	}
	for {
		if _, ok := t.Next(); !ok {
			break
		}
	}
	if t.Err() != nil {
		return false, t.Err()
	}
	for _, name := range g.Names() {
		if !t.seen[name] {
			return false, nil
		}
	}

	return true, nil
}
