// Package dfs types, options, and error definitions for the timestamped
// depth-first topological sort.
package dfs

import (
	"context"
	"errors"
)

// Vertex traversal states for tri-color marking.
const (
	white = iota // not yet discovered
	gray         // on the traversal stack (in progress)
	black        // fully explored
)

// ErrCycleDetected is returned when the traversal meets a back-edge, i.e. an
// edge into a vertex that is still on the stack.
var ErrCycleDetected = errors.New("dfs: cycle detected")

// Option configures Sort and SortWithTimes via functional arguments.
type Option func(*Options)

// Options holds configurable parameters for one traversal.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to context.Background().
	// Cancellation is checked once per vertex discovery.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order),
	// after its enter time is stamped. Returning an error aborts the sort.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all of a vertex's descendants have
	// been explored (post-order), after its exit time is stamped. Returning an
	// error aborts the sort.
	OnExit func(v int) error
}

// DefaultOptions returns the Options used when no Option is supplied:
// Background context, no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// Result captures the instrumented outcome of one forest traversal.
// All four slices have length Dim; timestamps come from the single shared
// clock and range over 1..2·Dim.
type Result struct {
	// Order lists all vertices by strictly decreasing exit time; for an
	// acyclic graph this is a valid topological order.
	Order []int

	// Enter[v] is the clock value stamped when v was pushed.
	Enter []int

	// Exit[v] is the clock value stamped when v was popped.
	Exit []int

	// Duration[v] = Exit[v] − Enter[v]: how long v stayed on the stack,
	// proportional to the size of its DFS subtree.
	Duration []int
}
