// Package matrix: sentinel error set. All validation failures surface one of
// these sentinels so callers match them via errors.Is; context (row index,
// observed width) is added by wrapping at the detection site.
package matrix

import "errors"

var (
	// ErrNilMatrix is returned when a nil adjacency matrix is supplied.
	ErrNilMatrix = errors.New("matrix: matrix is nil")

	// ErrEmptyMatrix is returned for a matrix with zero rows; the NoEdge
	// sentinel at (0,0) would not exist.
	ErrEmptyMatrix = errors.New("matrix: matrix is empty")

	// ErrNonSquare is returned when any row's length differs from the number
	// of rows. A nil row counts as length zero.
	ErrNonSquare = errors.New("matrix: matrix is not square")
)
