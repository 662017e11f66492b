// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// impl_nodes.go - implementation of the Nodes(names...) constructor.
//
// Contract:
//   - Adds one node per name, payload nil, in argument order.
//   - Existing names are updated in place (core.Set semantics), so Nodes
//     composes safely with topology constructors that share names.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(len(names)) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

const methodNodes = "Nodes"

// Nodes returns a Constructor that registers the given node names with
// nil payloads. Useful for seeding isolated nodes into a fixture.
func Nodes(names ...string) Constructor {
	return func(g *core.Graph) error {
		for _, name := range names {
			if err := g.Set(name, nil); err != nil {
				return fmt.Errorf("%s: Set(%q): %w", methodNodes, name, errConstruct(err))
			}
		}

		return nil
	}
}
