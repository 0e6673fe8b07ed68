package grid

import (
	"fmt"
	"strings"
)

// Layout text glyphs.
const (
	glyphWall   = '#'
	glyphEmpty  = '.'
	glyphStart  = 'S'
	glyphTarget = 'T'
	glyphMax    = '0' // cost MaxCost
)

// Parse reads a Layout from its text form, one row per line:
//
//	'#'      wall
//	'.'      cost 1
//	'1'..'9' that cost
//	'0'      cost MaxCost
//	'S'      start (cost 1)
//	'T'      target (cost 1)
//
// Blank leading and trailing lines are ignored; trailing whitespace on a
// row is trimmed. Exactly one S and one T are required.
func Parse(text string) (*Layout, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	rows := make([][]int, 0, len(lines))
	var starts, targets []Point

	for y, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		row := make([]int, 0, len(line))
		for x, r := range line {
			switch {
			case r == glyphWall:
				row = append(row, Wall)
			case r == glyphEmpty:
				row = append(row, Empty)
			case r == glyphStart:
				starts = append(starts, Point{X: x, Y: y})
				row = append(row, Empty)
			case r == glyphTarget:
				targets = append(targets, Point{X: x, Y: y})
				row = append(row, Empty)
			case r == glyphMax:
				row = append(row, MaxCost)
			case r >= '1' && r <= '9':
				row = append(row, int(r-'0'))
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, r, x, y)
			}
		}
		rows = append(rows, row)
	}

	g, err := FromRows(rows)
	if err != nil {
		return nil, err
	}
	if len(starts) != 1 || len(targets) != 1 {
		return nil, fmt.Errorf("%w: found %d start(s), %d target(s)", ErrMissingEndpoint, len(starts), len(targets))
	}

	return &Layout{Grid: g, Start: starts[0], Target: targets[0]}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(text string) *Layout {
	l, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return l
}

// Validate checks that both endpoints are inside the grid and open.
func (l *Layout) Validate() error {
	if l == nil || l.Grid == nil {
		return ErrEmptyGrid
	}
	for _, p := range []Point{l.Start, l.Target} {
		if !l.Grid.InBounds(p) {
			return fmt.Errorf("%w: endpoint %v", ErrOutOfBounds, p)
		}
		if !l.Grid.IsOpen(p) {
			return fmt.Errorf("%w: endpoint %v is a wall", ErrInvalidCost, p)
		}
	}
	return nil
}

// Clone returns a deep copy of l.
func (l *Layout) Clone() *Layout {
	return &Layout{Grid: l.Grid.Clone(), Start: l.Start, Target: l.Target}
}

// String renders l in the format accepted by Parse. Weighted start or
// target cells lose their weight in the round trip.
func (l *Layout) String() string {
	var b strings.Builder
	g := l.Grid
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			switch {
			case p == l.Start:
				b.WriteByte(glyphStart)
			case p == l.Target:
				b.WriteByte(glyphTarget)
			default:
				b.WriteByte(Glyph(g.cells[y][x]))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Glyph returns the text glyph of cell value v.
func Glyph(v int) byte {
	switch v {
	case Wall:
		return glyphWall
	case Empty:
		return glyphEmpty
	case MaxCost:
		return glyphMax
	default:
		return byte('0' + v)
	}
}
