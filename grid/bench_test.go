package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathrace/grid"
)

// BenchmarkConnectedComponents measures ConnectedComponents on a
// deterministic random 500×500 grid with roughly one wall in five cells.
// Complexity: O(W×H)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 500
	r := rand.New(rand.NewSource(42))
	rows := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = r.Intn(5) // 0 is a wall, 1..4 are costs
		}
		rows[y] = row
	}
	g, err := grid.FromRows(rows)
	if err != nil {
		b.Fatalf("setup FromRows failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}
