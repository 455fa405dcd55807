// Package kahn computes a topological ordering of a directed acyclic graph
// in adjacency-matrix form using Kahn's in-degree-reduction method.
//
// What
//
//   - Sort(g, opts...) returns a permutation of 0..N-1 in which every edge
//     u→v places u strictly before v.
//   - In-degrees are counted with one full N² scan; the source queue is
//     seeded with all in-degree-zero vertices in ascending index order and
//     drained FIFO. Each emitted vertex releases its successors in ascending
//     column order, enqueueing them at the back as their in-degree hits zero.
//   - A cycle leaves some vertices with permanent incoming edges, so fewer
//     than N vertices can be emitted; Sort detects this deterministically and
//     fails with ErrCycleDetected instead of returning the short prefix.
//
// Determinism
//
//	Ties among simultaneously available sources resolve in FIFO
//	availability order, not numeric order. The result is therefore fully
//	reproducible for a given matrix, but it is only one of possibly many
//	valid topological orders.
//
// Complexity (N = vertices)
//
//   - Time:   O(N²)   (in-degree scan plus one row scan per emitted vertex)
//   - Memory: O(N)    (in-degree table, source queue, output order)
//
// Options
//
//   - WithContext(ctx)    cancellation checked between dequeues.
//   - WithOnDequeue(fn)   observer hook invoked as each vertex is emitted.
//
// Errors
//
//   - matrix.ErrNilMatrix / ErrEmptyMatrix / ErrNonSquare on malformed input.
//   - ErrCycleDetected when the graph is not acyclic.
//   - context.Canceled / context.DeadlineExceeded via WithContext.
package kahn
