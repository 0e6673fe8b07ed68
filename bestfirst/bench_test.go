package bestfirst_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathrace/bestfirst"
	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/pathfinder"
)

// benchGrid builds a deterministic 200×200 weighted grid with open corners.
func benchGrid(b *testing.B) *grid.Grid {
	b.Helper()
	const n = 200
	r := rand.New(rand.NewSource(42))
	rows := make([][]int, n)
	for y := range rows {
		rows[y] = make([]int, n)
		for x := range rows[y] {
			if r.Intn(6) == 0 {
				continue // wall
			}
			rows[y][x] = 1 + r.Intn(grid.MaxCost)
		}
	}
	rows[0][0], rows[n-1][n-1] = 1, 1
	g, err := grid.FromRows(rows)
	if err != nil {
		b.Fatalf("setup FromRows failed: %v", err)
	}
	return g
}

func benchRun(b *testing.B, mk func(pathfinder.Environment) (*bestfirst.Engine, error)) {
	g := benchGrid(b)
	e, err := mk(g)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	target := grid.Point{X: g.Width - 1, Y: g.Height - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Initialize(grid.Point{}, target)
		for e.Solution() == nil && !pathfinder.Exhausted(e) {
			e.Step()
		}
	}
}

// BenchmarkDijkstra runs Dijkstra to completion. Complexity: O(E log E).
func BenchmarkDijkstra(b *testing.B) { benchRun(b, bestfirst.NewDijkstra) }

// BenchmarkAStar runs A* to completion. Complexity: O(E log E).
func BenchmarkAStar(b *testing.B) { benchRun(b, bestfirst.NewAStar) }

// BenchmarkGreedy runs Greedy Best-First Search to completion.
func BenchmarkGreedy(b *testing.B) { benchRun(b, bestfirst.NewGreedy) }
