// Package grid provides a rectangular cost grid treated as a 4-connected graph.
//
// Cells with value Wall are impassable; every other cell holds the cost,
// in [1, MaxCost], of stepping onto it.
package grid

import "fmt"

// New constructs a width×height Grid where every cell is Empty.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]int, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]int, width)
		for x := range cells[y] {
			cells[y][x] = Empty
		}
	}

	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// FromRows constructs a Grid from a non-empty, rectangular 2D slice indexed
// as rows[y][x]. It deep-copies the input.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrInvalidCost for bad input.
// Complexity: O(W×H) time and memory.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]int, h)
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = make([]int, w)
		for x, v := range row {
			if v < Wall || v > MaxCost {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidCost, v, x, y)
			}
			cells[y][x] = v
		}
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// IsOpen reports whether p can be stepped on: in bounds and not a wall.
func (g *Grid) IsOpen(p Point) bool {
	return g.InBounds(p) && g.cells[p.Y][p.X] != Wall
}

// Cost returns the cost of entering p. Walls report their value (0).
// Cost panics with an error wrapping ErrOutOfBounds when p is outside the
// grid; an out-of-bounds query is a caller bug, not a recoverable state.
func (g *Grid) Cost(p Point) int {
	if !g.InBounds(p) {
		panic(fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.Width, g.Height))
	}
	return g.cells[p.Y][p.X]
}

// Value returns the raw cell value at p, or ErrOutOfBounds.
func (g *Grid) Value(p Point) (int, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return g.cells[p.Y][p.X], nil
}

// Set stores value v at p. v must be Wall or a cost in [1, MaxCost].
func (g *Grid) Set(p Point, v int) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if v < Wall || v > MaxCost {
		return fmt.Errorf("%w: %d", ErrInvalidCost, v)
	}
	g.cells[p.Y][p.X] = v
	return nil
}

// SetWall turns p into a wall.
func (g *Grid) SetWall(p Point) error {
	return g.Set(p, Wall)
}

// Fill sets every cell to v.
func (g *Grid) Fill(v int) error {
	if v < Wall || v > MaxCost {
		return fmt.Errorf("%w: %d", ErrInvalidCost, v)
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = v
		}
	}
	return nil
}

// FillEmptyWithWalls turns every Empty cell into a wall, leaving weighted
// cells untouched.
func (g *Grid) FillEmptyWithWalls() {
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] == Empty {
				g.cells[y][x] = Wall
			}
		}
	}
}

// ClearWeights resets every weighted cell (cost > Empty) to Empty.
func (g *Grid) ClearWeights() {
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] > Empty {
				g.cells[y][x] = Empty
			}
		}
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([][]int, g.Height)
	for y := range g.cells {
		cells[y] = make([]int, g.Width)
		copy(cells[y], g.cells[y])
	}
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// Rows returns a deep copy of the cell values, indexed rows[y][x].
func (g *Grid) Rows() [][]int {
	return g.Clone().cells
}

// Neighbors returns the four orthogonal neighbors of p in up, right, down,
// left order. Out-of-bounds neighbors are included; filter with IsOpen.
// Complexity: O(1).
func (g *Grid) Neighbors(p Point) [4]Point {
	return Neighbors(p)
}

// Neighbors returns the four orthogonal neighbors of p in up, right, down,
// left order, independent of any grid.
func Neighbors(p Point) [4]Point {
	var out [4]Point
	for i, d := range conn4 {
		out[i] = p.Add(d)
	}
	return out
}

// index maps p to a row-major index: y*Width + x.
func (g *Grid) index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}
