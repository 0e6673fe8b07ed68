package bestfirst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathrace/grid"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bestfirst: invalid option supplied")

// Heuristic estimates the remaining cost from p to target.
type Heuristic func(p, target grid.Point) float64

// CostFunc returns the tentative accumulated cost of entering a neighbor
// whose cell cost is edge, from a node whose accumulated cost is g.
type CostFunc func(g float64, edge int) float64

// Accumulated is the usual relaxation: g + edge.
func Accumulated(g float64, edge int) float64 { return g + float64(edge) }

// Immediate ignores the path so far and returns edge alone.
func Immediate(_ float64, edge int) float64 { return float64(edge) }

// Option configures an Engine.
type Option func(*Options)

// Options holds the strategies and the display name of an Engine.
type Options struct {
	// Name is returned by Engine.Name.
	Name string
	// Heuristic estimates remaining cost; Zero turns the engine into Dijkstra.
	Heuristic Heuristic
	// Cost computes tentative g for a neighbor.
	Cost CostFunc

	err error
}

// DefaultOptions returns plain A*: Manhattan heuristic, accumulated cost.
func DefaultOptions() Options {
	return Options{
		Name:      "A*",
		Heuristic: Manhattan,
		Cost:      Accumulated,
	}
}

// WithName sets the display name. An empty name is an option violation.
func WithName(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: empty name", ErrOptionViolation)
			return
		}
		o.Name = name
	}
}

// WithHeuristic sets the heuristic. A nil heuristic is an option violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithCost sets the tentative-cost function. A nil function is an option violation.
func WithCost(c CostFunc) Option {
	return func(o *Options) {
		if c == nil {
			o.err = fmt.Errorf("%w: nil cost function", ErrOptionViolation)
			return
		}
		o.Cost = c
	}
}
