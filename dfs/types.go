package dfs

import (
	"context"
	"errors"
)

// Node colors of the classic three-state depth-first scheme.
const (
	// White marks a node not yet discovered.
	White = iota
	// Gray marks a node on the active stack: discovered, not finished.
	Gray
	// Black marks a finished node, emitted by the sequence.
	Black
)

var (
	// ErrGraphNil is returned when the graph argument is nil.
	ErrGraphNil = errors.New("dfs: graph is nil")
	// ErrStartNotFound is returned when the start node does not exist.
	ErrStartNotFound = errors.New("dfs: start node not found")
)

// Option customises a traversal before it starts.
type Option func(*Options)

// Options holds the tunable knobs of a depth-first traversal.
type Options struct {
	// Ctx aborts the traversal when cancelled; Err reports ctx.Err().
	Ctx context.Context

	// OnDiscover fires when a node turns Gray (first reached).
	// A non-nil error stops the traversal.
	OnDiscover func(name string) error

	// FilterNeighbor decides whether the edge curr→neighbor may be
	// descended. Return false to prune the subtree behind it.
	FilterNeighbor func(curr, neighbor string) bool
}

// DefaultOptions returns the baseline configuration: background context,
// no discovery hook, no pruning.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnDiscover:     func(string) error { return nil },
		FilterNeighbor: func(string, string) bool { return true },
	}
}

// WithContext attaches a cancellation context to the traversal.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithOnDiscover installs a hook fired when a node is first reached.
func WithOnDiscover(fn func(name string) error) Option {
	return func(o *Options) { o.OnDiscover = fn }
}

// WithFilterNeighbor installs an edge predicate; edges it rejects are
// never descended.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}
