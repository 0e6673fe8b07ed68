package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathrace/algorithms"
	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/pathfinder"
)

func TestKinds_RoundTrip(t *testing.T) {
	kinds := algorithms.Kinds()
	require.Len(t, kinds, 8)
	assert.Equal(t, algorithms.None, kinds[0])

	for _, k := range kinds {
		bySlug, err := algorithms.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, bySlug)

		byName, err := algorithms.ParseKind(k.DisplayName())
		require.NoError(t, err)
		assert.Equal(t, k, byName)
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]algorithms.Kind{
		"astar":                        algorithms.AStar,
		" A* ":                         algorithms.AStar,
		"DIJKSTRA":                     algorithms.Dijkstra,
		"dijkstra's algorithm":         algorithms.Dijkstra,
		"Breadth First Search":         algorithms.BFS,
		"greedy":                       algorithms.Greedy,
		"A* (Higher Heuristic Weight)": algorithms.WeightedAStar,
		"tiebreaker":                   algorithms.TiebreakerAStar,
		"euclidean":                    algorithms.EuclideanAStar,
		"none":                         algorithms.None,
	}
	for in, want := range cases {
		got, err := algorithms.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := algorithms.ParseKind("dfs")
	assert.ErrorIs(t, err, algorithms.ErrUnknownKind)
}

func TestParseKinds(t *testing.T) {
	got, err := algorithms.ParseKinds("dijkstra, bfs,astar,,greedy")
	require.NoError(t, err)
	assert.Equal(t, algorithms.DefaultSlots(), got)

	_, err = algorithms.ParseKinds("astar,warp")
	assert.ErrorIs(t, err, algorithms.ErrUnknownKind)
}

func TestNew_EveryKind(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	start, target := grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 4}

	for _, k := range algorithms.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			pf, err := algorithms.New(k, g)
			require.NoError(t, err)
			assert.Equal(t, k.DisplayName(), pf.Name())

			pf.Initialize(start, target)
			for i := 0; i < 200 && pf.Solution() == nil && !pathfinder.Exhausted(pf); i++ {
				pf.Step()
			}
			if k == algorithms.None {
				assert.Nil(t, pf.Solution())
				return
			}
			assert.NoError(t, pathfinder.ValidatePath(pf.Solution(), start, target))
		})
	}
}

func TestNew_Errors(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	_, err = algorithms.New(algorithms.Kind(99), g)
	assert.ErrorIs(t, err, algorithms.ErrUnknownKind)
	assert.Equal(t, "Kind(99)", algorithms.Kind(99).String())

	_, err = algorithms.New(algorithms.AStar, nil)
	assert.ErrorIs(t, err, pathfinder.ErrNilEnvironment)
}

func TestNewAll_Independent(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)

	pfs, err := algorithms.NewAll(algorithms.DefaultSlots(), g)
	require.NoError(t, err)
	require.Len(t, pfs, 4)

	pfs[0].Initialize(grid.Point{}, grid.Point{X: 3, Y: 3})
	pfs[0].Step()
	assert.Empty(t, pfs[1].Frontier(), "untouched slot has no state")
}
