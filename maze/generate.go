package maze

import (
	"math/rand"

	"github.com/katalvlaran/pathrace/grid"
)

// directions a carver may tunnel in; shuffled per cell.
var directions = [4]grid.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

// frame is one cell on the carver's explicit stack.
type frame struct {
	at   grid.Point
	dirs [4]grid.Point
	next int
}

// carve fills g with walls and digs a perfect maze from (0,0): from each
// cell, in random order, tunnel two cells away when both the cell between
// and the one beyond are still walls. Cells outside g never count as walls.
func carve(g *grid.Grid, r *rand.Rand) {
	_ = g.Fill(grid.Wall)

	isWall := func(p grid.Point) bool {
		return g.InBounds(p) && g.Cost(p) == grid.Wall
	}
	var stack []frame
	enter := func(p grid.Point) {
		_ = g.Set(p, grid.Empty)
		f := frame{at: p, dirs: directions}
		r.Shuffle(len(f.dirs), func(i, j int) { f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i] })
		stack = append(stack, f)
	}

	enter(grid.Point{})
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		between := top.at.Add(d)
		beyond := between.Add(d)
		if isWall(between) && isWall(beyond) {
			_ = g.Set(between, grid.Empty)
			enter(beyond) // may reallocate stack; top is not used after this
		}
	}
}

// lastCarved returns the bottom-right cell carve opens: the largest even
// coordinate on each axis.
func lastCarved(width, height int) grid.Point {
	return grid.Point{X: width - 1 - (width+1)%2, Y: height - 1 - (height+1)%2}
}

// weighWalls replaces every wall with a random cost in [low, MaxCost].
func weighWalls(g *grid.Grid, low int, r *rand.Rand) {
	span := float64(grid.MaxCost - low + 1)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Point{X: x, Y: y}
			if g.Cost(p) == grid.Wall {
				_ = g.Set(p, low+int(span*r.Float64()))
			}
		}
	}
}

// scatter gives each cell a quarter chance of wall, a quarter of cost 1 and
// otherwise a cost in 2..MaxCost.
func scatter(g *grid.Grid, r *rand.Rand) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			v := r.Float64()
			var c int
			switch {
			case v < 0.25:
				c = grid.Wall
			case v <= 0.5:
				c = grid.Empty
			default:
				c = 2 + int(float64(grid.MaxCost-1)*r.Float64())
			}
			_ = g.Set(grid.Point{X: x, Y: y}, c)
		}
	}
}

// gradient sets each row's cost from its distance to the centre row: 10 on
// the centre, 1 at the edges. A non-nil r lowers every weighted cell by a
// random share of its weight, never below 2.
func gradient(g *grid.Grid, r *rand.Rand) {
	half := g.Height / 2
	for y := 0; y < g.Height; y++ {
		dy := y - half
		if dy < 0 {
			dy = -dy
		}
		diff := int((1 - float64(dy)/float64(half)) * float64(grid.MaxCost-1))
		for x := 0; x < g.Width; x++ {
			c := grid.Empty
			if diff > 0 {
				k := diff
				if r != nil {
					k = diff - int(float64(diff)*r.Float64())
				}
				c = k + 1
			}
			_ = g.Set(grid.Point{X: x, Y: y}, c)
		}
	}
}
