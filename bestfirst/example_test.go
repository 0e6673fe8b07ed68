// Package bestfirst_test shows how to drive an Engine one step at a time.
package bestfirst_test

import (
	"fmt"

	"github.com/katalvlaran/pathrace/bestfirst"
	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/pathfinder"
)

// ExampleNewAStar runs A* around a short wall and prints the path, its cost
// and the number of steps it took.
func ExampleNewAStar() {
	l := grid.MustParse(`
S.#.
..#.
...T
`)
	astar, err := bestfirst.NewAStar(l.Grid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	astar.Initialize(l.Start, l.Target)
	steps := 0
	for astar.Solution() == nil && !pathfinder.Exhausted(astar) {
		astar.Step()
		steps++
	}

	path := astar.Solution()
	fmt.Println(astar.Name(), path)
	fmt.Println("cost:", pathfinder.PathCost(l.Grid, path), "steps:", steps)
	// Output:
	// A* [(0,0) (1,0) (1,1) (1,2) (2,2) (3,2)]
	// cost: 5 steps: 8
}
