package render

import (
	"bufio"
	"io"

	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/session"
)

// Text glyphs layered over the layout glyphs.
const (
	glyphExplored = 'o'
	glyphSolution = '*'
	glyphStart    = 'S'
	glyphTarget   = 'T'
)

// Text writes the two label lines of v followed by the grid, one row per
// line. Start and target win over the solution, which wins over explored.
func Text(w io.Writer, layout *grid.Layout, v session.SlotView) error {
	if layout == nil || layout.Grid == nil {
		return ErrNilLayout
	}
	g := layout.Grid

	cells := make([][]byte, g.Height)
	for y := range cells {
		cells[y] = make([]byte, g.Width)
		for x := range cells[y] {
			cells[y][x] = grid.Glyph(g.Cost(grid.Point{X: x, Y: y}))
		}
	}
	mark := func(pts []grid.Point, b byte) {
		for _, p := range pts {
			if g.InBounds(p) {
				cells[p.Y][p.X] = b
			}
		}
	}
	mark(v.Explored, glyphExplored)
	mark(v.Solution, glyphSolution)
	mark([]grid.Point{layout.Start}, glyphStart)
	mark([]grid.Point{layout.Target}, glyphTarget)

	bw := bufio.NewWriter(w)
	name, stats := Label(v)
	bw.WriteString(name)
	bw.WriteByte('\n')
	bw.WriteString(stats)
	bw.WriteByte('\n')
	for _, row := range cells {
		bw.Write(row)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
