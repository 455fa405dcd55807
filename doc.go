// Package toposort computes and checks topological orderings of directed
// acyclic graphs represented as adjacency matrices.
//
// 🚀 What is toposort?
//
//	A small, deterministic library built around one data shape — a square
//	N×N matrix whose (0,0) element is the "no edge" sentinel — and three
//	independent, composable operations:
//		• kahn.Sort       — Kahn's in-degree-reduction method (FIFO sources)
//		• dfs.Sort        — DFS enter/exit-timestamp ("stack duration") method,
//		                    iterative explicit-stack form, with dfs.SortWithTimes
//		                    exposing the per-vertex timing instrumentation
//		• order.Valid     — checks any candidate ordering against the graph
//
// ✨ Why choose toposort?
//
//   - Deterministic – fixed scan orders and a single shared DFS clock make
//     every result reproducible; re-running a sorter yields identical output
//   - Hardened – malformed matrices fail fast with sentinels, cycles are
//     detected explicitly (no short prefixes, no unbounded recursion), and
//     candidate orderings are validated as permutations before checking
//   - Generic – any comparable element type works; presence alone defines an
//     edge, so weights never change the result
//
// Everything is organized under four subpackages plus a demo driver:
//
//	matrix/       — adjacency-matrix representation + structural validation
//	kahn/         — in-degree topological sort
//	dfs/          — timestamped depth-first topological sort
//	order/        — ordering-vs-graph consistency checker
//	cmd/toposort/ — CLI that reads a YAML matrix and prints the full report
//
// Quick ASCII example:
//
//	0 ──► 1 ──► 3
//	│     │     │
//	▼     ▼     ▼
//	2 ──► 4 ──► 5
//
//	one valid order: 0 1 2 3 4 5
//
// Dive into the per-package docs for contracts, complexity, and errors.
//
//	go get github.com/katalvlaran/toposort
package toposort
