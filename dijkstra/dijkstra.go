package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/digraph/core"
)

// Traversal is a lazy single-source shortest-path sequence: each Next
// finalizes and emits the reachable node of minimum distance, in
// non-decreasing distance order. Distances, predecessors, and the
// frontier live on the Traversal itself, never on the graph.
type Traversal struct {
	graph *core.Graph
	opts  Options
	dist  map[string]float64
	prev  map[string]string
	done  map[string]bool
	front nodeHeap
	err   error
}

// New prepares a shortest-path traversal of g from startName.
// Every edge weight in the graph must be strictly positive; the whole
// edge set is checked up front and ErrNonPositiveWeight reported before
// any relaxation happens. Also returns ErrGraphNil or ErrStartNotFound.
// Complexity of a full drain: O((V+E) log V).
func New(g *core.Graph, startName string, opts ...Option) (*Traversal, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := g.Get(startName); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, startName)
	}
	for _, e := range g.Edges() {
		if e.Weight <= 0 {
			return nil, fmt.Errorf("%w: %q→%q (%g)", ErrNonPositiveWeight, e.From, e.To, e.Weight)
		}
	}

	t := &Traversal{
		graph: g,
		opts:  o,
		dist:  make(map[string]float64, g.Len()),
		prev:  make(map[string]string, g.Len()),
		done:  make(map[string]bool, g.Len()),
	}
	t.dist[startName] = 0
	heap.Push(&t.front, &frontierItem{name: startName, dist: 0})

	return t, nil
}

// Next finalizes the next-closest reachable node, relaxes its outgoing
// edges, and emits it as a Step. Returns false once no reachable node
// remains or the traversal stopped on an error (see Err). Unreachable
// nodes are never emitted.
func (t *Traversal) Next() (Step, bool) {
	for t.err == nil && t.front.Len() > 0 {
		if err := t.opts.Ctx.Err(); err != nil {
			t.err = err

			return Step{}, false
		}

		it := heap.Pop(&t.front).(*frontierItem)
		if t.done[it.name] {
			// Stale frontier entry superseded by a shorter route.
			continue
		}
		t.done[it.name] = true

		node, err := t.graph.Get(it.name)
		if err != nil {
			t.err = fmt.Errorf("dijkstra: frontier node vanished: %w", err)

			return Step{}, false
		}
		t.relax(node, it.dist)

		return Step{Node: node, Dist: it.dist, Prev: t.prev[it.name]}, true
	}

	return Step{}, false
}

// relax offers dist+w to every successor of n, recording improvements.
func (t *Traversal) relax(n *core.Node, dist float64) {
	for dest, w := range n.AllEdges() {
		name := dest.Name()
		if t.done[name] {
			continue
		}
		nd := dist + w
		if cur, seen := t.dist[name]; seen && nd >= cur {
			continue
		}
		t.dist[name] = nd
		t.prev[name] = n.Name()
		heap.Push(&t.front, &frontierItem{name: name, dist: nd})
	}
}

// Err reports the error that stopped the traversal, if any.
func (t *Traversal) Err() error { return t.err }

// Dist returns the shortest distance from the start to name known so
// far, or +Inf if name has not been reached. Final once name has been
// emitted or the sequence is drained.
func (t *Traversal) Dist(name string) float64 {
	d, ok := t.dist[name]
	if !ok {
		return math.Inf(1)
	}

	return d
}

// Reached reports whether name has been finalized (emitted).
func (t *Traversal) Reached(name string) bool { return t.done[name] }

// Rest drains the remaining sequence into a slice, giving the eager
// non-decreasing distance order.
func (t *Traversal) Rest() []Step {
	var out []Step
	for {
		s, ok := t.Next()
		if !ok {
			break
		}
		out = append(out, s)
	}

	return out
}

// PathTo reconstructs the shortest path from the start node to dest by
// following predecessor links. Valid once dest has been emitted; returns
// an error if dest has not been finalized.
func (t *Traversal) PathTo(dest string) ([]string, error) {
	if !t.done[dest] {
		return nil, fmt.Errorf("dijkstra: no finalized path to %q", dest)
	}
	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		p, ok := t.prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// frontierItem is a tentative (node, distance) offer on the frontier heap.
// Improvements push a new item instead of adjusting the old one; stale
// items are skipped at pop time against the done set.
type frontierItem struct {
	name string
	dist float64
}

// nodeHeap is a min-heap of frontier offers ordered by distance.
type nodeHeap []*frontierItem

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)        { *h = append(*h, x.(*frontierItem)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return it
}
