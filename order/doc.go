// Package order checks a candidate vertex ordering against a graph in
// adjacency-matrix form.
//
// What
//
//   - Valid(g, ord) reports whether ord is topologically consistent with g:
//     for every edge u→v, u's rank in ord must be strictly less than v's.
//   - The candidate must be a permutation of 0..N-1. Rather than misbehaving
//     on a stale rank lookup, Valid checks this precondition explicitly and
//     fails with ErrOrderLength, ErrVertexOutOfRange, or ErrDuplicateVertex.
//
// Why
//
//	Both sorting packages (kahn, dfs) produce orders this checker accepts;
//	it is the independent oracle used by their tests and by callers that
//	receive orderings from outside the module.
//
// Complexity (N = vertices)
//
//   - Time:   O(N²)   (one rank pass over ord, then every matrix entry once)
//   - Memory: O(N)    (the rank lookup table)
//
// Errors
//
//   - matrix.ErrNilMatrix / ErrEmptyMatrix / ErrNonSquare on malformed graphs.
//   - ErrOrderLength / ErrVertexOutOfRange / ErrDuplicateVertex on malformed
//     candidates, each wrapped with the offending vertex and rank.
//
// A false result with a nil error means the inputs were well-formed and the
// ordering genuinely violates at least one edge.
package order
