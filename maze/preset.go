package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathrace/grid"
)

// Accepted width and height range of every preset.
const (
	MinSize = 4
	MaxSize = 512
)

// Sentinel errors.
var (
	ErrTooSmall      = errors.New("maze: grid is too small")
	ErrTooLarge      = errors.New("maze: grid is too large")
	ErrUnknownPreset = errors.New("maze: unknown preset")
)

// Preset names a layout generator.
type Preset int

// Available presets.
const (
	Blank Preset = iota
	Maze
	WeightedMaze
	Randomized
	Gradient
	RandomizedGradient
)

var presetNames = [...]string{
	Blank:              "blank",
	Maze:               "maze",
	WeightedMaze:       "weighted-maze",
	Randomized:         "randomized",
	Gradient:           "gradient",
	RandomizedGradient: "randomized-gradient",
}

// Presets returns every Preset in declaration order.
func Presets() []Preset {
	out := make([]Preset, len(presetNames))
	for i := range presetNames {
		out[i] = Preset(i)
	}
	return out
}

// String returns the preset slug, e.g. "weighted-maze".
func (p Preset) String() string {
	if p < 0 || int(p) >= len(presetNames) {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetNames[p]
}

// ParsePreset maps a slug to its Preset. Matching ignores case and treats
// '_' and ' ' like '-'.
func ParsePreset(s string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	for i, name := range presetNames {
		if key == name {
			return Preset(i), nil
		}
	}
	return Blank, fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// Build generates preset p on a width×height grid from seed.
func Build(p Preset, width, height int, seed int64) (*grid.Layout, error) {
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrTooSmall, width, height, MinSize, MinSize)
	}
	if width > MaxSize || height > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d, at most %dx%d",
			ErrTooLarge, width, height, MaxSize, MaxSize)
	}
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}

	var start, target grid.Point
	switch p {
	case Blank:
		start = grid.Point{X: width / 4, Y: height / 2}
		target = grid.Point{X: width - width/4, Y: height / 2}
	case Maze:
		carve(g, rngFromSeed(seed))
		start, target = grid.Point{}, lastCarved(width, height)
	case WeightedMaze:
		r := rngFromSeed(seed)
		carve(g, r)
		weighWalls(g, grid.MaxCost/2+1, r)
		start, target = grid.Point{}, lastCarved(width, height)
	case Randomized:
		scatter(g, rngFromSeed(seed))
		start, target = grid.Point{X: 1, Y: 1}, grid.Point{X: width - 2, Y: height - 2}
	case Gradient:
		gradient(g, nil)
		start, target = grid.Point{X: 1, Y: height / 2}, grid.Point{X: width - 2, Y: height / 2}
	case RandomizedGradient:
		gradient(g, rngFromSeed(seed))
		start, target = grid.Point{X: 1, Y: height / 2}, grid.Point{X: width - 2, Y: height / 2}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPreset, int(p))
	}

	// endpoints are traversable regardless of what was generated under them
	_ = g.Set(start, grid.Empty)
	_ = g.Set(target, grid.Empty)

	return &grid.Layout{Grid: g, Start: start, Target: target}, nil
}
