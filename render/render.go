package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/session"
)

// Sentinel errors.
var (
	ErrNilLayout  = errors.New("render: layout is nil")
	ErrNoViews    = errors.New("render: nothing to draw")
	ErrBadOptions = errors.New("render: invalid options")
)

// Options controls image geometry.
type Options struct {
	CellSize    int // pixels per cell side
	Columns     int // panels per row
	Margin      int // pixels around and between panels
	LabelHeight int // pixels under each panel for the two label lines
}

// DefaultOptions returns 12px cells in two columns.
func DefaultOptions() Options {
	return Options{CellSize: 12, Columns: 2, Margin: 12, LabelHeight: 32}
}

func (o Options) validate() error {
	if o.CellSize < 1 || o.Columns < 1 || o.Margin < 0 || o.LabelHeight < 0 {
		return fmt.Errorf("%w: %+v", ErrBadOptions, o)
	}
	return nil
}

// Palette.
var (
	colorBackground = color.RGBA{128, 128, 128, 255}
	colorEmpty      = color.RGBA{255, 255, 255, 255}
	colorWall       = color.RGBA{20, 20, 20, 255}
	colorStart      = color.RGBA{0, 255, 0, 255}
	colorTarget     = color.RGBA{255, 0, 0, 255}
	colorExplored   = color.RGBA{192, 192, 192, 255}
	colorSolution   = color.RGBA{0, 255, 255, 255}
	colorLabel      = color.RGBA{255, 255, 255, 255}
)

// weightMinColor is the darkest blue channel a weight tint reaches.
const weightMinColor = 100

// CellColor returns the base fill of a cell with value v.
func CellColor(v int) color.RGBA {
	switch {
	case v == grid.Wall:
		return colorWall
	case v <= grid.Empty:
		return colorEmpty
	}
	i := v - 1
	inc := (255 - weightMinColor) / grid.MaxCost
	return color.RGBA{255, uint8(255 - i*inc/2), uint8(255 - i*inc), 255}
}

// blend averages a and b channel by channel.
func blend(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		uint8((int(a.R) + int(b.R)) / 2),
		uint8((int(a.G) + int(b.G)) / 2),
		uint8((int(a.B) + int(b.B)) / 2),
		255,
	}
}

// Label returns the two caption lines of a slot.
func Label(v session.SlotView) (string, string) {
	if !v.Stats.Found {
		return v.Name, fmt.Sprintf("Cost/Length/Steps: -/-/%d", v.Stats.Steps)
	}
	return v.Name, fmt.Sprintf("Cost/Length/Steps: %d/%d/%d",
		v.Stats.PathCost, v.Stats.PathLength, v.Stats.Steps)
}

// Image draws views over layout and returns the picture.
func Image(layout *grid.Layout, views []session.SlotView, opts Options) (image.Image, error) {
	if layout == nil || layout.Grid == nil {
		return nil, ErrNilLayout
	}
	if len(views) == 0 {
		return nil, ErrNoViews
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	g := layout.Grid
	panelW := g.Width * opts.CellSize
	panelH := g.Height*opts.CellSize + opts.LabelHeight
	cols := opts.Columns
	if cols > len(views) {
		cols = len(views)
	}
	rows := (len(views) + cols - 1) / cols

	dc := gg.NewContext(
		cols*panelW+(cols+1)*opts.Margin,
		rows*panelH+(rows+1)*opts.Margin,
	)
	dc.SetColor(colorBackground)
	dc.Clear()

	for i, v := range views {
		ox := opts.Margin + (i%cols)*(panelW+opts.Margin)
		oy := opts.Margin + (i/cols)*(panelH+opts.Margin)
		drawPanel(dc, layout, v, opts, float64(ox), float64(oy))
	}

	return dc.Image(), nil
}

// PNG draws views over layout and writes a PNG to w.
func PNG(w io.Writer, layout *grid.Layout, views []session.SlotView, opts Options) error {
	img, err := Image(layout, views, opts)
	if err != nil {
		return err
	}
	return gg.NewContextForImage(img).EncodePNG(w)
}

// SavePNG is PNG into a file at path.
func SavePNG(path string, layout *grid.Layout, views []session.SlotView, opts Options) error {
	img, err := Image(layout, views, opts)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}

// cellFills resolves the fill of every cell of one panel.
func cellFills(layout *grid.Layout, v session.SlotView) [][]color.RGBA {
	g := layout.Grid
	fills := make([][]color.RGBA, g.Height)
	for y := range fills {
		fills[y] = make([]color.RGBA, g.Width)
		for x := range fills[y] {
			fills[y][x] = CellColor(g.Cost(grid.Point{X: x, Y: y}))
		}
	}
	for _, p := range v.Explored {
		if !g.InBounds(p) {
			continue
		}
		if base := fills[p.Y][p.X]; base == colorEmpty {
			fills[p.Y][p.X] = colorExplored
		} else {
			fills[p.Y][p.X] = blend(base, colorExplored)
		}
	}
	for _, p := range v.Solution {
		if g.InBounds(p) {
			fills[p.Y][p.X] = colorSolution
		}
	}
	fills[layout.Start.Y][layout.Start.X] = colorStart
	fills[layout.Target.Y][layout.Target.X] = colorTarget
	return fills
}

func drawPanel(dc *gg.Context, layout *grid.Layout, v session.SlotView, opts Options, ox, oy float64) {
	cs := float64(opts.CellSize)
	for y, row := range cellFills(layout, v) {
		for x, c := range row {
			dc.SetColor(c)
			dc.DrawRectangle(ox+float64(x)*cs, oy+float64(y)*cs, cs, cs)
			dc.Fill()
		}
	}

	if opts.LabelHeight == 0 {
		return
	}
	name, stats := Label(v)
	base := oy + float64(layout.Grid.Height)*cs
	dc.SetColor(colorLabel)
	dc.DrawString(name, ox, base+float64(opts.LabelHeight)/2-2)
	dc.DrawString(stats, ox, base+float64(opts.LabelHeight)-2)
}
