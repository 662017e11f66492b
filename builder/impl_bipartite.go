// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewNodes).
//   - Adds the left group "A0".."A{n1-1}" then the right group
//     "B0".."B{n2-1}", nil payloads, ascending index order.
//   - Emits every left→right edge Ai → Bj with weight 1; no right→left
//     edges and no edges inside a group, so direction tests can assert
//     the asymmetry.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n1 + n2) vertices + O(n1·n2) edges, O(1) extra space.
//
// Determinism: deterministic IDs and emission order for given sizes.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/digraph/core"
)

const (
	methodBipartite = "CompleteBipartite"
	leftPrefix      = "A"
	rightPrefix     = "B"
	bipartiteWeight = 1.0
)

// CompleteBipartite returns a Constructor that builds the directed
// complete bipartite graph from a left group of n1 nodes to a right
// group of n2 nodes.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: sizes %d×%d: %w", methodBipartite, n1, n2, ErrTooFewNodes)
		}

		var i, j int
		for i = 0; i < n1; i++ {
			if err := g.Set(leftPrefix+strconv.Itoa(i), nil); err != nil {
				return fmt.Errorf("%s: Set(%s%d): %w", methodBipartite, leftPrefix, i, errConstruct(err))
			}
		}
		for j = 0; j < n2; j++ {
			if err := g.Set(rightPrefix+strconv.Itoa(j), nil); err != nil {
				return fmt.Errorf("%s: Set(%s%d): %w", methodBipartite, rightPrefix, j, errConstruct(err))
			}
		}

		// All left→right edges, row-major order.
		for i = 0; i < n1; i++ {
			src := leftPrefix + strconv.Itoa(i)
			for j = 0; j < n2; j++ {
				dst := rightPrefix + strconv.Itoa(j)
				if err := g.Connect(src, dst, bipartiteWeight); err != nil {
					return fmt.Errorf("%s: Connect(%s→%s): %w", methodBipartite, src, dst, errConstruct(err))
				}
			}
		}

		return nil
	}
}
