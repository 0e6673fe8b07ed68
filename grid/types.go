// Package grid defines core types, cell constants, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/pathrace.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidCost indicates a cell value outside [Wall, MaxCost].
	ErrInvalidCost = errors.New("grid: cell cost out of range")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrMissingEndpoint indicates a layout without exactly one start and one target.
	ErrMissingEndpoint = errors.New("grid: layout needs exactly one start and one target")
	// ErrBadGlyph indicates an unknown character in a text layout.
	ErrBadGlyph = errors.New("grid: unknown layout glyph")
)

const (
	// Wall marks a non-traversable cell.
	Wall = 0
	// Empty is the cost of an unweighted cell.
	Empty = 1
	// MaxCost is the highest cost a cell can carry.
	MaxCost = 10
)

// Point is an integer grid coordinate. X grows to the right, Y grows down.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// conn4 lists the orthogonal offsets in up, right, down, left order.
var conn4 = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid treats a 2D integer grid of cell costs as a 4-connected graph.
// Width and Height define dimensions; cells[y][x] holds the cost of (x, y).
type Grid struct {
	Width, Height int
	cells         [][]int
}

// Layout is a Grid together with the start and target of a search.
type Layout struct {
	Grid   *Grid
	Start  Point
	Target Point
}
