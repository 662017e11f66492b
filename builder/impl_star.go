// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// impl_star.go - implementation of the Star() constructor.
//
// Contract:
//   - Builds the fixed five-node pentagram fixture: nodes "0".."4" with
//     payload "NodeI", each node i connected to (i+2) mod 5 and
//     (i-2) mod 5, every edge weight 1.
//   - All ten edges are emitted in ascending source order (documented
//     design choice; every node ends with out-degree and in-degree 2).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(1) — the size is fixed.
//
// Determinism: fully literal; identical on every call.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/digraph/core"
)

const (
	methodStar = "Star"
	starNodes  = 5
	starWeight = 1.0
)

// Star returns a Constructor that builds the five-node pentagram: every
// node reaches the two nodes "two steps away" in both ring directions.
func Star() Constructor {
	return func(g *core.Graph) error {
		var i int
		// Register the five nodes with readable payloads first.
		for i = 0; i < starNodes; i++ {
			if err := g.Set(strconv.Itoa(i), fmt.Sprintf("Node%d", i)); err != nil {
				return fmt.Errorf("%s: Set(%d): %w", methodStar, i, errConstruct(err))
			}
		}
		// Connect i → (i+2) mod 5 and i → (i-2) mod 5 (= i+3 mod 5).
		for i = 0; i < starNodes; i++ {
			src := strconv.Itoa(i)
			for _, off := range []int{2, 3} {
				dst := strconv.Itoa((i + off) % starNodes)
				if err := g.Connect(src, dst, starWeight); err != nil {
					return fmt.Errorf("%s: Connect(%s→%s): %w", methodStar, src, dst, errConstruct(err))
				}
			}
		}

		return nil
	}
}
