package pathfinder

import (
	"errors"

	"github.com/katalvlaran/pathrace/grid"
)

// ErrNilEnvironment is returned when an engine is built without an Environment.
var ErrNilEnvironment = errors.New("pathfinder: environment is nil")

// Environment answers the two questions a grid search asks about a cell.
type Environment interface {
	// IsOpen reports whether p is inside the world and traversable.
	IsOpen(p grid.Point) bool
	// Cost returns the cost (≥ 1) of entering p. It panics when p is
	// outside the world.
	Cost(p grid.Point) int
}

// Pathfinder is the capability every search variant implements.
type Pathfinder interface {
	// Initialize resets all state and seeds a new run from start to target.
	Initialize(start, target grid.Point)
	// Step performs one unit of work and returns the Points explored by it.
	// Once the frontier is exhausted Step returns an empty slice forever.
	Step() []grid.Point
	// Solution returns the start→target path, or nil if not yet found.
	Solution() []grid.Point
	// Frontier returns the Points currently waiting to be expanded.
	Frontier() []grid.Point
	// Name returns a stable, human-readable algorithm name.
	Name() string
}

// None is a Pathfinder that does nothing.
type None struct{}

// Initialize implements Pathfinder.
func (None) Initialize(_, _ grid.Point) {}

// Step implements Pathfinder; it never explores anything.
func (None) Step() []grid.Point { return []grid.Point{} }

// Solution implements Pathfinder; it is always nil.
func (None) Solution() []grid.Point { return nil }

// Frontier implements Pathfinder; it is always empty.
func (None) Frontier() []grid.Point { return []grid.Point{} }

// Name implements Pathfinder.
func (None) Name() string { return "None" }

// Exhausted reports whether pf has finished without a solution: its
// frontier is empty and no path was found.
func Exhausted(pf Pathfinder) bool {
	return pf.Solution() == nil && len(pf.Frontier()) == 0
}

var _ Pathfinder = None{}
