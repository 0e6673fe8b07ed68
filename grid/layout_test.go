package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathrace/grid"
)

func TestParse(t *testing.T) {
	l, err := grid.Parse(`
S.#9
.50T
`)
	require.NoError(t, err)
	assert.Equal(t, grid.Point{X: 0, Y: 0}, l.Start)
	assert.Equal(t, grid.Point{X: 3, Y: 1}, l.Target)
	assert.Equal(t, 4, l.Grid.Width)
	assert.Equal(t, 2, l.Grid.Height)
	assert.False(t, l.Grid.IsOpen(grid.Point{X: 2, Y: 0}))
	assert.Equal(t, 9, l.Grid.Cost(grid.Point{X: 3, Y: 0}))
	assert.Equal(t, 5, l.Grid.Cost(grid.Point{X: 1, Y: 1}))
	assert.Equal(t, grid.MaxCost, l.Grid.Cost(grid.Point{X: 2, Y: 1}))
	require.NoError(t, l.Validate())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"NoTarget", "S..\n...", grid.ErrMissingEndpoint},
		{"TwoStarts", "S.S\n..T", grid.ErrMissingEndpoint},
		{"BadGlyph", "S.x\n..T", grid.ErrBadGlyph},
		{"Ragged", "S..\n.T", grid.ErrNonRectangular},
		{"Empty", "", grid.ErrEmptyGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.text)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLayout_RoundTrip(t *testing.T) {
	text := "S.#9\n.50T\n"
	l := grid.MustParse(text)
	assert.Equal(t, text, l.String())

	c := l.Clone()
	require.NoError(t, c.Grid.SetWall(grid.Point{X: 1, Y: 0}))
	assert.Equal(t, text, l.String(), "clone must not share cells")
}

func TestLayout_Validate(t *testing.T) {
	l := grid.MustParse("S.\n.T")
	require.NoError(t, l.Grid.SetWall(l.Target))
	assert.ErrorIs(t, l.Validate(), grid.ErrInvalidCost)

	l = grid.MustParse("S.\n.T")
	l.Start = grid.Point{X: 5, Y: 5}
	assert.ErrorIs(t, l.Validate(), grid.ErrOutOfBounds)

	var nilLayout *grid.Layout
	assert.ErrorIs(t, nilLayout.Validate(), grid.ErrEmptyGrid)
}
