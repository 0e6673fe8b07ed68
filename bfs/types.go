package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathrace/grid"
)

// Name is the display name of the search.
const Name = "Breadth First Search"

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures the search via functional arguments.
type Option func(*Options)

// Options holds the display name and observation hooks.
type Options struct {
	// Name is returned by Search.Name.
	Name string

	// OnEnqueue is called each time a Point is appended to the queue,
	// with the hop depth of its first discovery.
	OnEnqueue func(p grid.Point, depth int)

	// OnDequeue is called for the Point a Step is about to expand. Skipped
	// duplicates are not reported.
	OnDequeue func(p grid.Point, depth int)

	err error
}

// DefaultOptions returns the standard name and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Name:      Name,
		OnEnqueue: func(grid.Point, int) {},
		OnDequeue: func(grid.Point, int) {},
	}
}

// WithName overrides the display name. An empty name is an option violation.
func WithName(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: empty name", ErrOptionViolation)
			return
		}
		o.Name = name
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p grid.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p grid.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
