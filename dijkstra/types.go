package dijkstra

import (
	"context"
	"errors"

	"github.com/katalvlaran/digraph/core"
)

var (
	// ErrGraphNil is returned when the graph argument is nil.
	ErrGraphNil = errors.New("dijkstra: graph is nil")
	// ErrStartNotFound is returned when the start node does not exist.
	ErrStartNotFound = errors.New("dijkstra: start node not found")
	// ErrNonPositiveWeight is returned when any edge in the graph has
	// weight ≤ 0. Checked eagerly across the whole graph before the
	// first relaxation.
	ErrNonPositiveWeight = errors.New("dijkstra: non-positive edge weight")
)

// Step is one emission of the shortest-path sequence: a node together
// with its finalized distance from the start and the predecessor that
// achieved it. The start node's Prev is empty.
type Step struct {
	Node *core.Node
	Dist float64
	Prev string
}

// Option customises a traversal before it starts.
type Option func(*Options)

// Options holds the tunable knobs of a shortest-path traversal.
type Options struct {
	// Ctx aborts the traversal when cancelled; Err reports ctx.Err().
	Ctx context.Context
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext attaches a cancellation context to the traversal.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}
