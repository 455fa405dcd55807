package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/toposort/matrix"
)

// frame is one explicit-stack record: the vertex being explored and the next
// neighbor column to scan when control returns to it.
type frame struct {
	v    int
	next int
}

// walker encapsulates the per-call traversal state.
type walker[T comparable] struct {
	graph matrix.Adjacency[T] // the matrix being sorted
	opts  Options             // traversal options
	color []int               // white/gray/black per vertex
	enter []int               // push timestamps
	exit  []int               // pop timestamps
	clock int                 // shared logical clock, ticks on push and pop
	stack []frame             // explicit DFS stack
}

// Sort computes a topological ordering of g from DFS exit times. It is the
// plain variant of SortWithTimes for callers that only want the order.
func Sort[T comparable](g matrix.Adjacency[T], opts ...Option) ([]int, error) {
	res, err := SortWithTimes(g, opts...)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// SortWithTimes runs the timestamped DFS forest over g and returns the order
// together with the Enter/Exit/Duration instrumentation. If g contains a
// cycle, it fails with ErrCycleDetected; no partial result is returned.
func SortWithTimes[T comparable](g matrix.Adjacency[T], opts ...Option) (*Result, error) {
	// 1. Structural validation runs first on every public entry point.
	if err := g.Validate(); err != nil {
		return nil, err
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize traversal state: all vertices white, clock at zero.
	n := g.Dim()
	w := &walker[T]{
		graph: g,
		opts:  dopts,
		color: make([]int, n),
		enter: make([]int, n),
		exit:  make([]int, n),
		stack: make([]frame, 0, n),
	}

	// 4. Drive the forest from every still-white vertex in ascending index
	//    order. The clock keeps running across trees, so disconnected and
	//    multi-source graphs get one consistent global timestamping.
	for v := 0; v < n; v++ {
		if w.color[v] == white {
			if err := w.traverse(v); err != nil {
				return nil, err
			}
		}
	}

	// 5. Order by strictly decreasing exit time. Exit stamps are unique, so
	//    the comparison is total and the sort has no ties to break.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return w.exit[order[i]] > w.exit[order[j]] })

	// 6. Derive stack durations for instrumentation.
	duration := make([]int, n)
	for v := 0; v < n; v++ {
		duration[v] = w.exit[v] - w.enter[v]
	}

	return &Result{Order: order, Enter: w.enter, Exit: w.exit, Duration: duration}, nil
}

// traverse explores the DFS tree rooted at root using the explicit frame
// stack, stamping enter on push and exit on pop exactly as the recursive
// formulation would. An edge into a gray vertex is a back-edge: the target is
// still on the stack, so the graph has a cycle.
func (w *walker[T]) traverse(root int) error {
	if err := w.push(root); err != nil {
		return err
	}

	n := w.graph.Dim()
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// Resume scanning top's row where the last descent left off.
		descended := false
		for top.next < n {
			u := top.next
			top.next++
			if !w.graph.HasEdge(top.v, u) {
				continue
			}
			switch w.color[u] {
			case gray:
				return fmt.Errorf("dfs: back edge %d→%d: %w", top.v, u, ErrCycleDetected)
			case black:
				continue
			}
			// White neighbor: descend. top may be invalidated by the append
			// inside push, so re-enter the outer loop instead of reusing it.
			if err := w.push(u); err != nil {
				return err
			}
			descended = true
			break
		}
		if descended {
			continue
		}

		// Row exhausted: the subtree under top.v is complete.
		if err := w.pop(); err != nil {
			return err
		}
	}

	return nil
}

// push marks v in progress, stamps its enter time, and opens its frame.
func (w *walker[T]) push(v int) error {
	// Cancellation check once per discovery, the unit of traversal work.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.color[v] = gray
	w.clock++
	w.enter[v] = w.clock

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	w.stack = append(w.stack, frame{v: v})

	return nil
}

// pop closes the top frame, stamps its exit time, and marks it done.
func (w *walker[T]) pop() error {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	w.clock++
	w.exit[top.v] = w.clock
	w.color[top.v] = black

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(top.v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", top.v, err)
		}
	}

	return nil
}
