// Package digraph is a compact toolkit for directed, weighted graphs:
// build and mutate them freely, then walk them as lazy node sequences.
//
// 🚀 What is digraph?
//
//	A small, dependency-light library that brings together:
//		• Core primitives: named nodes with payloads, mirrored edge indexes,
//		  cascade-safe deletion, structural self-checks
//		• Traversals: BFS (layer order) and DFS (finishing order, two variants)
//		• Shortest paths: Dijkstra over strictly positive weights
//		• Fixtures: deterministic graph constructors for tests and demos
//
// ✨ Why choose digraph?
//
//   - Lazy by contract – every traversal emits one node per Next call;
//     stop early and pay only for what you consumed
//   - Reentrant – traversal scratch state lives on the iterator, never on
//     the graph, so any number of walks may read one graph
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – hooks (OnVisit, OnEnqueue, OnDiscover…) for custom logic
//
// Everything is organized under four subpackages:
//
//	core/     — Graph, Node, Edge types and mutation primitives
//	bfs/      — breadth-first traversal, spanning checks, path lookup
//	dfs/      — depth-first traversal in finishing order (snapshot & rescan)
//	dijkstra/ — lazy single-source shortest paths
//	builder/  — composable deterministic fixture constructors
//
// Quick ASCII example:
//
//	    A──→B
//	    ↑   │
//	    C←──┘
//
//	a three-node cycle: BFS from A emits A,B,C; DFS finishes C,B,A;
//	Dijkstra emits each node the moment its distance is final.
//
//	go get github.com/katalvlaran/digraph
package digraph
