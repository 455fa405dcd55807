// Package kahn option and error definitions for the in-degree topological sort.
package kahn

import (
	"context"
	"errors"
)

// ErrCycleDetected is returned when the graph contains a cycle: Kahn's method
// then exhausts its source queue before emitting every vertex.
var ErrCycleDetected = errors.New("kahn: cycle detected")

// Option configures Sort via functional arguments.
type Option func(*Options)

// Options holds configurable parameters for one Sort call.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to context.Background().
	// Cancellation is checked once per dequeued vertex.
	Ctx context.Context

	// OnDequeue, if non-nil, is invoked as each vertex leaves the source
	// queue, in emission order. It observes only; it cannot abort the sort.
	OnDequeue func(v int)
}

// DefaultOptions returns the Options used when no Option is supplied:
// Background context, no observer hook.
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

// WithOnDequeue registers a callback to run as each vertex is emitted.
func WithOnDequeue(fn func(v int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
