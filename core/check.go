// Package core: structural consistency validation.

package core

import "fmt"

// CheckStructure validates the edge / back-edge symmetry across every node:
// every edge stored in a node's outgoing set must appear, as the same Edge
// value, in its destination's incoming index under the matching key, and
// vice versa. Intended as a debug assertion after mutation sequences;
// returns a wrapped ErrStructure on the first inconsistency found, nil when
// the graph is well formed.
// Complexity: O(V + E).
func (g *Graph) CheckStructure() error {
	for name, n := range g.nodes {
		// Outgoing side: keys, endpoints, and the destination mirror.
		for to, e := range n.out {
			if e.From != name || e.To != to {
				return fmt.Errorf("%w: edge %s→%s filed under %s→%s", ErrStructure, e.From, e.To, name, to)
			}
			dest, ok := g.nodes[to]
			if !ok {
				return fmt.Errorf("%w: edge %s→%s has no destination node", ErrStructure, name, to)
			}
			if dest.in[name] != e {
				return fmt.Errorf("%w: edge %s→%s missing from incoming index of %s", ErrStructure, name, to, to)
			}
		}
		// Incoming side: keys, endpoints, and the source ownership.
		for from, e := range n.in {
			if e.To != name || e.From != from {
				return fmt.Errorf("%w: back-edge %s→%s filed under %s→%s", ErrStructure, e.From, e.To, from, name)
			}
			src, ok := g.nodes[from]
			if !ok {
				return fmt.Errorf("%w: back-edge %s→%s has no source node", ErrStructure, from, name)
			}
			if src.out[name] != e {
				return fmt.Errorf("%w: back-edge %s→%s missing from outgoing set of %s", ErrStructure, from, name, from)
			}
		}
	}

	return nil
}
