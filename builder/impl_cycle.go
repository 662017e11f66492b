// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// impl_cycle.go - implementation of the Cycle(n, weight) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewNodes): a directed ring needs three nodes to
//     be distinguishable from a mutual pair.
//   - Adds nodes "0".."n-1" with nil payloads in ascending index order.
//   - Emits edges i → (i+1) mod n, all carrying the given weight, in
//     ascending source order.
//   - Weight is passed through unvalidated; shortest-path callers apply
//     their own positivity check.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(n) edges, O(1) extra space.
//
// Determinism: deterministic IDs and emission order for a given n.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/digraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a directed ring of n nodes with
// uniform edge weight.
func Cycle(n int, weight float64) Constructor {
	return func(g *core.Graph) error {
		// Validate the parameter domain early to avoid partial work.
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}

		var i int
		for i = 0; i < n; i++ {
			if err := g.Set(strconv.Itoa(i), nil); err != nil {
				return fmt.Errorf("%s: Set(%d): %w", methodCycle, i, errConstruct(err))
			}
		}
		for i = 0; i < n; i++ {
			src, dst := strconv.Itoa(i), strconv.Itoa((i+1)%n)
			if err := g.Connect(src, dst, weight); err != nil {
				return fmt.Errorf("%s: Connect(%s→%s): %w", methodCycle, src, dst, errConstruct(err))
			}
		}

		return nil
	}
}
