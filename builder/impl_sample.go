// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// impl_sample.go - implementation of the Sample() constructor.
//
// Contract:
//   - Builds the fixed six-node weighted fixture used across the module's
//     examples and shortest-path tests: nodes "0".."5" with payload "NodeI"
//     and the literal edge list
//       0→1 (1), 0→5 (5), 1→2 (20), 1→3 (3),
//       1→4 (4), 2→0 (2), 3→4 (4), 4→2 (4).
//   - Node "5" is a sink; "2" closes a cycle back to "0".
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
	methodSample = "Sample"
	sampleNodes  = 6
)

// sampleEdges is the literal weighted edge list of the fixture.
var sampleEdges = []struct {
	from, to string
	weight   float64
}{
	{"0", "1", 1}, {"0", "5", 5},
	{"1", "2", 20}, {"1", "3", 3}, {"1", "4", 4},
	{"2", "0", 2},
	{"3", "4", 4},
	{"4", "2", 4},
}

// Sample returns a Constructor that builds the six-node weighted fixture.
func Sample() Constructor {
	return func(g *core.Graph) error {
		var i int
		for i = 0; i < sampleNodes; i++ {
			if err := g.Set(strconv.Itoa(i), fmt.Sprintf("Node%d", i)); err != nil {
				return fmt.Errorf("%s: Set(%d): %w", methodSample, i, errConstruct(err))
			}
		}
		for _, e := range sampleEdges {
			if err := g.Connect(e.from, e.to, e.weight); err != nil {
				return fmt.Errorf("%s: Connect(%s→%s): %w", methodSample, e.from, e.to, errConstruct(err))
			}
		}

		return nil
	}
}
