// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph fixtures from
// composable Constructor functions.
//
// Build(cons...) creates a fresh graph and applies each constructor in
// order; the same sequence always yields an identical graph. The package
// ships two literal fixtures exercised throughout the module's tests and
// examples — Star (the five-node pentagram) and Sample (the six-node
// weighted graph) — plus parameterised topologies Cycle(n, weight) and
// CompleteBipartite(n1, n2), and the Nodes(names...) seeding helper for
// isolated vertices.
//
// Constructors validate their parameters and return sentinel errors
// (ErrTooFewNodes, ErrConstructFailed); they never panic. Compose freely:
//
//	g, err := builder.Build(
//		builder.Cycle(10, 1),
//		builder.Nodes("island"),
//	)
package builder
