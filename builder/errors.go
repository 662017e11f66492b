// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; they validate and return.

package builder

import "errors"

// ErrTooFewNodes indicates that a numeric parameter (e.g. n, group size)
// is smaller than the allowed minimum for the requested constructor.
// Classification: validation error (parameters).
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that graph assembly itself failed: a nil
// constructor was passed to Build, or an underlying core mutation was
// rejected mid-construction.
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect wrapping */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
