package grid_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathrace/grid"
)

// TestConnectedComponents_Simple tests ConnectedComponents on a 4×3 grid.
//
// Grid (# = wall):
//
//	# . . #
//	. . # #
//	# # . .
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Simple(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	})
	require.NoError(t, err)

	comps := g.ConnectedComponents()
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)
}

// TestConnectedComponents_NoDiagonals ensures corner-touching cells are separate.
func TestConnectedComponents_NoDiagonals(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{1, 0},
		{0, 1},
	})
	require.NoError(t, err)
	assert.Len(t, g.ConnectedComponents(), 2)
}

func TestReachable(t *testing.T) {
	l := grid.MustParse(`
S.#..
..#..
..#.T
`)
	g := l.Grid
	assert.False(t, g.Reachable(l.Start, l.Target), "solid wall separates the halves")
	assert.True(t, g.Reachable(l.Start, grid.Point{X: 1, Y: 2}))
	assert.True(t, g.Reachable(l.Start, l.Start))
	assert.False(t, g.Reachable(l.Start, grid.Point{X: 2, Y: 0}), "walls are never reachable")

	require.NoError(t, g.Set(grid.Point{X: 2, Y: 1}, 3))
	assert.True(t, g.Reachable(l.Start, l.Target), "opening a gap connects them")
}
