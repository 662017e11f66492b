package dfs

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// frame is one level of the explicit descent stack.
type frame struct {
	node *core.Node
	// next holds the unexplored successors, snapshotted at push time.
	// Unused by the rescan variant, which re-reads the live edge set.
	next []*core.Node
	idx  int
}

// Traversal is a lazy depth-first sequence over the nodes reachable from a
// start node. Working state (stack, colors, parents) lives on the
// Traversal itself, so independent traversals over one graph never
// interfere; mutating the graph mid-drain is undefined behavior.
type Traversal struct {
	graph  *core.Graph
	opts   Options
	stack  []frame
	color  map[string]int
	parent map[string]string
	rescan bool
	err    error
}

// New prepares a depth-first traversal of g from startName. The emission
// order matches a recursive postorder walk: descend every undiscovered
// neighbor in enumeration order, then finish. Returns ErrGraphNil or
// ErrStartNotFound for invalid input.
// Complexity of a full drain: O(V + E) plus hook cost; stack depth is
// bounded by the longest simple path from the start.
func New(g *core.Graph, startName string, opts ...Option) (*Traversal, error) {
	return newTraversal(g, startName, false, opts)
}

// NewIterative prepares the explicit-rescan variant: on every step the
// node on top of the stack re-reads its edge set and descends the first
// undiscovered neighbor, popping and emitting once none remain. With a
// stable enumeration order it finishes nodes in the same order as New;
// per-node cost grows to O(d²) in the out-degree d.
func NewIterative(g *core.Graph, startName string, opts ...Option) (*Traversal, error) {
	return newTraversal(g, startName, true, opts)
}

func newTraversal(g *core.Graph, startName string, rescan bool, opts []Option) (*Traversal, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start, err := g.Get(startName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, startName)
	}

	t := &Traversal{
		graph:  g,
		opts:   o,
		color:  make(map[string]int, g.Len()),
		parent: make(map[string]string, g.Len()),
		rescan: rescan,
	}
	if err := t.push(start); err != nil {
		t.err = err
	}

	return t, nil
}

// Next advances the traversal until one more node finishes, and emits it.
// Returns false once the stack is empty or the traversal stopped on an
// error (see Err).
func (t *Traversal) Next() (*core.Node, bool) {
	for t.err == nil && len(t.stack) > 0 {
		if err := t.opts.Ctx.Err(); err != nil {
			t.err = err

			return nil, false
		}

		top := &t.stack[len(t.stack)-1]
		child := t.descend(top)
		if t.err != nil {
			return nil, false
		}
		if child != nil {
			continue
		}

		// No unexplored successor left: the top node is finished.
		t.stack = t.stack[:len(t.stack)-1]
		t.color[top.node.Name()] = Black

		return top.node, true
	}

	return nil, false
}

// descend pushes the first undiscovered successor of top, or returns nil
// when top has none left.
func (t *Traversal) descend(top *frame) *core.Node {
	if t.rescan {
		// Rescan the live edge set from the beginning each time.
		for dest := range top.node.AllEdges() {
			if t.color[dest.Name()] != White {
				continue
			}
			if !t.opts.FilterNeighbor(top.node.Name(), dest.Name()) {
				continue
			}
			t.parent[dest.Name()] = top.node.Name()
			if err := t.push(dest); err != nil {
				t.err = err

				return nil
			}

			return dest
		}

		return nil
	}

	for top.idx < len(top.next) {
		dest := top.next[top.idx]
		top.idx++
		if t.color[dest.Name()] != White {
			continue
		}
		if !t.opts.FilterNeighbor(top.node.Name(), dest.Name()) {
			continue
		}
		t.parent[dest.Name()] = top.node.Name()
		if err := t.push(dest); err != nil {
			t.err = err

			return nil
		}

		return dest
	}

	return nil
}

// push marks n in-progress, fires the discovery hook, and opens a frame.
func (t *Traversal) push(n *core.Node) error {
	t.color[n.Name()] = Gray
	if err := t.opts.OnDiscover(n.Name()); err != nil {
		return fmt.Errorf("dfs: OnDiscover error at %q: %w", n.Name(), err)
	}

	f := frame{node: n}
	if !t.rescan {
		for dest := range n.AllEdges() {
			f.next = append(f.next, dest)
		}
	}
	t.stack = append(t.stack, f)

	return nil
}

// Err reports the error that stopped the traversal, if any.
func (t *Traversal) Err() error { return t.err }

// Visited reports whether name has been discovered so far.
func (t *Traversal) Visited(name string) bool { return t.color[name] != White }

// Finished reports whether name has already been emitted.
func (t *Traversal) Finished(name string) bool { return t.color[name] == Black }

// Parent returns the node from which name was first discovered.
// The start node has no parent.
func (t *Traversal) Parent(name string) (string, bool) {
	p, ok := t.parent[name]

	return p, ok
}

// Rest drains the remaining sequence into a slice, giving the eager
// finishing order.
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
