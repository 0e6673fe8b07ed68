package bestfirst

import (
	"fmt"

	"github.com/katalvlaran/pathrace/pathfinder"
)

// Display names of the built-in variants.
const (
	NameDijkstra        = "Dijkstra's Algorithm"
	NameAStar           = "A*"
	NameEuclideanAStar  = "A* (Euclidean)"
	NameWeightedAStar   = "A* (Higher Heuristic Weight)"
	NameTiebreakerAStar = "A* (Tiebreaker)"
	NameGreedy          = "Greedy Best First Search"
)

// NewDijkstra returns a uniform-cost search: zero heuristic.
func NewDijkstra(env pathfinder.Environment) (*Engine, error) {
	return New(env, WithName(NameDijkstra), WithHeuristic(Zero))
}

// NewAStar returns A* with the Manhattan heuristic.
func NewAStar(env pathfinder.Environment) (*Engine, error) {
	return New(env, WithName(NameAStar), WithHeuristic(Manhattan))
}

// NewEuclideanAStar returns A* with the straight-line heuristic.
func NewEuclideanAStar(env pathfinder.Environment) (*Engine, error) {
	return New(env, WithName(NameEuclideanAStar), WithHeuristic(Euclidean))
}

// NewWeightedAStar returns A* whose Manhattan heuristic is multiplied by w.
// w must exceed 1; it trades optimality for fewer expansions.
func NewWeightedAStar(env pathfinder.Environment, w float64) (*Engine, error) {
	if !(w > 1) {
		return nil, fmt.Errorf("%w: weight %v must be greater than 1", ErrOptionViolation, w)
	}
	return New(env, WithName(NameWeightedAStar), WithHeuristic(Scaled(Manhattan, w)))
}

// NewTiebreakerAStar returns A* with the heuristic inflated by TiebreakFactor.
func NewTiebreakerAStar(env pathfinder.Environment) (*Engine, error) {
	return New(env, WithName(NameTiebreakerAStar), WithHeuristic(Scaled(Manhattan, TiebreakFactor)))
}

// NewGreedy returns Greedy Best-First Search: the tentative cost of a
// neighbor is its own cell cost, so g is not a path cost and the result is
// not optimal.
func NewGreedy(env pathfinder.Environment) (*Engine, error) {
	return New(env, WithName(NameGreedy), WithHeuristic(Manhattan), WithCost(Immediate))
}
