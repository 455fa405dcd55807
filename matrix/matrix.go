package matrix

import "fmt"

// Adjacency is a square edge matrix over vertices 0..Dim()-1.
//
// The value stored at position (0,0) is the NoEdge sentinel: any other value
// at [u][v] denotes a directed edge u→v. Edge values carry no further
// meaning (weights are ignored), so the element type only needs equality.
//
// An Adjacency is plain data owned by the caller; algorithms never mutate it.
type Adjacency[T comparable] [][]T

// Dim returns the number of vertices, i.e. the number of rows.
func (m Adjacency[T]) Dim() int { return len(m) }

// NoEdge returns the "no edge" sentinel, the value stored at (0,0).
// The matrix must have passed Validate.
func (m Adjacency[T]) NoEdge() T { return m[0][0] }

// HasEdge reports whether the directed edge u→v is present, i.e. whether
// m[u][v] differs from the NoEdge sentinel. Indices are not range-checked;
// the matrix must have passed Validate.
func (m Adjacency[T]) HasEdge(u, v int) bool { return m[u][v] != m[0][0] }

// Validate checks that m is a well-formed adjacency matrix: non-nil,
// non-empty, and square. It is idempotent and side-effect-free; every public
// sorting or checking operation in this module runs it first.
func (m Adjacency[T]) Validate() error { return Validate(m) }

// Validate is the function form of Adjacency.Validate, usable directly on a
// raw [][]T literal.
func Validate[T comparable](m Adjacency[T]) error {
	// 1. A nil matrix carries no sentinel and no vertices.
	if m == nil {
		return ErrNilMatrix
	}

	// 2. An empty matrix has no (0,0) element to serve as the sentinel.
	n := len(m)
	if n == 0 {
		return ErrEmptyMatrix
	}

	// 3. Every row must span exactly n columns (nil rows have length zero).
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("matrix: row %d has %d columns, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}

	return nil
}
