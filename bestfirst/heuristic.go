package bestfirst

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/pathrace/grid"
)

// Heuristic multipliers of the inflated A* variants.
const (
	// StrongWeight makes A* greedier at the price of optimality.
	StrongWeight = 3.0
	// TiebreakFactor nudges equal-f ties toward the target.
	TiebreakFactor = 1.001
)

// Zero always returns 0.
func Zero(_, _ grid.Point) float64 { return 0 }

// Manhattan returns |dx| + |dy|.
func Manhattan(p, target grid.Point) float64 { return float64(p.Manhattan(target)) }

// Euclidean returns the straight-line distance between p and target.
func Euclidean(p, target grid.Point) float64 {
	return floats.Distance(
		[]float64{float64(p.X), float64(p.Y)},
		[]float64{float64(target.X), float64(target.Y)},
		2,
	)
}

// Scaled returns h multiplied by w.
func Scaled(h Heuristic, w float64) Heuristic {
	return func(p, target grid.Point) float64 { return w * h(p, target) }
}
