package order

import (
	"fmt"

	"github.com/katalvlaran/toposort/matrix"
)

// unranked marks a vertex not yet assigned a rank while the lookup is built.
const unranked = -1

// Valid reports whether ord is a topological ordering consistent with g:
// every edge u→v in the matrix must place u strictly before v. The candidate
// must be a permutation of 0..Dim-1; malformed candidates fail with one of
// the package sentinels instead of producing an undefined answer.
func Valid[T comparable](g matrix.Adjacency[T], ord []int) (bool, error) {
	// 1. Structural validation of the graph comes first, as everywhere.
	if err := g.Validate(); err != nil {
		return false, err
	}
	n := g.Dim()

	// 2. Permutation precondition: exact length, in-range, no repeats.
	if len(ord) != n {
		return false, fmt.Errorf("order: got %d vertices, want %d: %w", len(ord), n, ErrOrderLength)
	}

	// 3. Build the vertex→rank lookup in one pass, catching violations as
	//    they appear so the error names the first offending rank.
	pos := make([]int, n)
	for i := range pos {
		pos[i] = unranked
	}
	for i, v := range ord {
		if v < 0 || v >= n {
			return false, fmt.Errorf("order: vertex %d at rank %d: %w", v, i, ErrVertexOutOfRange)
		}
		if pos[v] != unranked {
			return false, fmt.Errorf("order: vertex %d at ranks %d and %d: %w", v, pos[v], i, ErrDuplicateVertex)
		}
		pos[v] = i
	}

	// 4. Check every matrix entry: each edge must point forward in the order.
	//    A self-loop can never satisfy pos[u] < pos[u], so it fails here too.
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if g.HasEdge(u, v) && pos[u] >= pos[v] {
				return false, nil
			}
		}
	}

	return true, nil
}
