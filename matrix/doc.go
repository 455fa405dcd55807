// Package matrix defines the adjacency-matrix graph representation shared by
// every ordering package in this module (kahn, dfs, order), together with its
// structural validation.
//
// What
//
//   - Adjacency[T] is a square N×N matrix over vertex indices 0..N-1.
//   - The element stored at position (0,0) is the designated NoEdge sentinel;
//     any other value at [u][v] denotes a directed edge u→v. Only presence
//     matters, so T needs nothing beyond equality (comparable).
//   - Validate rejects nil, empty, and non-square matrices before any
//     algorithm touches them.
//
// Why
//
//	Centralizing the representation and its guards keeps the sorting
//	packages free of ad hoc shape checks: every public operation begins
//	with the same Validate call and fails with the same sentinels.
//
// Determinism
//
//	Validation scans rows in ascending index order and reports the first
//	violation, so the returned error is reproducible for a given input.
//
// Complexity
//
//   - Time:   O(N) for Validate (row-length checks only)
//   - Memory: O(1), no allocation on the success path
//
// Errors
//
//   - ErrNilMatrix    if the matrix is nil.
//   - ErrEmptyMatrix  if it has zero rows (the (0,0) sentinel would not exist).
//   - ErrNonSquare    if any row length differs from the row count; wrapped
//     with the offending row index, matchable via errors.Is.
package matrix
