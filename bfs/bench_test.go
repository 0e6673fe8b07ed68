package bfs_test

import (
	"testing"

	"github.com/katalvlaran/pathrace/bfs"
	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/pathfinder"
)

// BenchmarkSearch_OpenGrid runs BFS corner to corner on an open 300×300 grid.
// Complexity: O(W×H)
func BenchmarkSearch_OpenGrid(b *testing.B) {
	g, err := grid.New(300, 300)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	s, err := bfs.New(g)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	target := grid.Point{X: 299, Y: 299}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Initialize(grid.Point{}, target)
		for s.Solution() == nil && !pathfinder.Exhausted(s) {
			s.Step()
		}
	}
}
