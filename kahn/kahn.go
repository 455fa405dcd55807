package kahn

import (
	"github.com/katalvlaran/toposort/matrix"
)

// Sort computes a topological ordering of g using Kahn's in-degree method.
// The returned slice is a permutation of 0..Dim-1 in which every edge u→v
// places u before v. If g contains a cycle, Sort fails with ErrCycleDetected;
// no partial order is returned.
func Sort[T comparable](g matrix.Adjacency[T], opts ...Option) ([]int, error) {
	// 1. Structural validation runs first on every public entry point.
	if err := g.Validate(); err != nil {
		return nil, err
	}

	// 2. Apply options.
	kopts := DefaultOptions()
	for _, fn := range opts {
		fn(&kopts)
	}

	n := g.Dim()

	// 3. Count incoming edges per vertex with one full matrix scan.
	inDegree := make([]int, n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if g.HasEdge(u, v) {
				inDegree[v]++
			}
		}
	}

	// 4. Seed the FIFO source queue with every in-degree-zero vertex,
	//    ascending, so the first round of ties is emitted in index order.
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if inDegree[v] == 0 {
			queue = append(queue, v)
		}
	}

	// 5. Repeatedly emit the front source and release its successors.
	order := make([]int, 0, n)
	var v int
	for len(queue) > 0 {
		// 5a. Cancellation check between dequeues.
		select {
		case <-kopts.Ctx.Done():
			return nil, kopts.Ctx.Err()
		default:
		}

		// 5b. Dequeue FIFO and record the vertex.
		v, queue = queue[0], queue[1:]
		if kopts.OnDequeue != nil {
			kopts.OnDequeue(v)
		}
		order = append(order, v)

		// 5c. Removing v decrements each successor's in-degree; vertices
		//     reaching zero join the back of the queue.
		for w := 0; w < n; w++ {
			if !g.HasEdge(v, w) {
				continue
			}
			inDegree[w]--
			if inDegree[w] == 0 {
				queue = append(queue, w)
			}
		}
	}

	// 6. Any vertex never emitted still holds an incoming edge, which means
	//    it sits on (or behind) a cycle.
	if len(order) < n {
		return nil, ErrCycleDetected
	}

	return order, nil
}
