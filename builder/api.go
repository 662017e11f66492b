// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(cons...). Creates g, runs cons in order.
//   - All public factories are declared in impl_*.go files, one topology
//     per file.
//   - Determinism: the same constructor order produces identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Constructor applies a deterministic graph mutation. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same call order.
//
// Rationale: isolates topology logic behind a uniform function type.
type Constructor func(g *core.Graph) error

// Build creates a new core.Graph and applies all constructors in order.
// Any constructor error is wrapped with the context "Build: %w" and
// returned immediately; no partial cleanup is attempted by design.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
// Errors: wraps constructor errors via %w; callers should branch with
// errors.Is against builder sentinels (ErrTooFewNodes, ErrConstructFailed).
func Build(cons ...Constructor) (*core.Graph, error) {
	// Create the target graph (O(1)).
	g := core.NewGraph()

	// Apply each constructor sequentially to preserve deterministic order.
	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			// Wrap once at the API boundary; inner layers already added context.
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	// Success: deterministic for equal constructor sequences.
	return g, nil
}

// errConstruct tags a core mutation failure with ErrConstructFailed while
// keeping the cause reachable through errors.Is.
func errConstruct(cause error) error {
	return fmt.Errorf("%w: %w", ErrConstructFailed, cause)
}
