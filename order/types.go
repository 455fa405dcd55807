// Package order sentinel errors for malformed ordering candidates.
package order

import "errors"

var (
	// ErrOrderLength is returned when the candidate's length differs from the
	// graph's vertex count.
	ErrOrderLength = errors.New("order: order length does not match vertex count")

	// ErrVertexOutOfRange is returned when the candidate contains an index
	// outside 0..N-1.
	ErrVertexOutOfRange = errors.New("order: vertex index out of range")

	// ErrDuplicateVertex is returned when the candidate lists a vertex twice.
	ErrDuplicateVertex = errors.New("order: duplicate vertex in order")
)
