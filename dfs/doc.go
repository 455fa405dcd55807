// Package dfs computes a topological ordering of a directed acyclic graph in
// adjacency-matrix form from depth-first enter/exit timestamps, the
// "stack duration" method.
//
// What
//
//   - Sort(g, opts...) returns a permutation of 0..N-1 ordered by strictly
//     decreasing exit time — the classical finish-time topological order.
//   - SortWithTimes(g, opts...) additionally returns the per-vertex Enter,
//     Exit, and Duration arrays for callers that want the instrumentation
//     (Duration[v] = Exit[v] − Enter[v], proportional to v's subtree size:
//     how long v stayed on the traversal stack).
//   - One logical clock is shared across the whole DFS forest: trees are
//     rooted at each still-undiscovered vertex in ascending index order, and
//     the clock ticks on every push and every pop, so all timestamps are
//     globally unique.
//
// Hardening
//
//	The traversal uses an explicit frame stack, not recursion, so depth is
//	bounded by heap memory rather than the goroutine stack even for a graph
//	that is one long path. Vertices are tri-color marked (white: not yet
//	discovered, gray: on the stack, black: done); an edge into a gray vertex
//	is a back-edge and fails immediately with ErrCycleDetected instead of
//	looping or silently mis-ordering.
//
// Determinism
//
//	Roots and neighbors are both scanned in ascending index order and exit
//	times are unique, so the timestamps and the resulting order are fully
//	reproducible with no tie-break rule needed.
//
// Complexity (N = vertices)
//
//   - Time:   O(N²)   (each vertex scans its full matrix row once)
//   - Memory: O(N)    (colors, timestamps, frame stack)
//
// Options
//
//   - WithContext(ctx)   cancellation checked on each vertex discovery.
//   - WithOnVisit(fn)    pre-order hook; a returned error aborts the sort.
//   - WithOnExit(fn)     post-order hook; a returned error aborts the sort.
//
// Errors
//
//   - matrix.ErrNilMatrix / ErrEmptyMatrix / ErrNonSquare on malformed input.
//   - ErrCycleDetected when the graph is not acyclic (wrapped with the
//     offending back-edge, matchable via errors.Is).
//   - context.Canceled / context.DeadlineExceeded via WithContext.
//   - Any error returned by OnVisit or OnExit.
package dfs
