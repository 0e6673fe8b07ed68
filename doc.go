// Package pathrace races grid pathfinding algorithms against each other,
// one step at a time, so their exploration can be compared side by side.
//
// What is pathrace?
//
//	A small set of packages that model a weighted 4-connected grid, drive
//	several search algorithms over it in lock-step and report how much of
//	the grid each one explored before it found (or failed to find) a path:
//		• Grid model: walls, weighted cells 1..10, text layouts
//		• Step-wise pathfinders: BFS, Dijkstra, A* variants, greedy best-first
//		• Presets: blank, maze, weighted maze, randomized, gradients
//		• Sessions: shared start/target, per-slot statistics, summaries
//		• Output: PNG panels, ASCII, an HTTP API and a CLI
//
// Layout:
//
//	grid/        Grid, Point, Layout, text parsing, connectivity
//	pathfinder/  the Pathfinder contract, path helpers, None
//	bestfirst/   priority-queue engine and its A*/Dijkstra/greedy variants
//	bfs/         breadth-first search
//	algorithms/  catalog of named pathfinder kinds
//	maze/        seeded preset generators
//	session/     lock-step comparison runs
//	render/      PNG and text output
//	internal/    config, logging, metrics, HTTP server
//	cmd/pathrace the command-line entry point
//
// Quick example:
//
//	l := grid.MustParse("S..#\n.#..\n...T")
//	pfs, _ := algorithms.NewAll(algorithms.DefaultSlots(), l.Grid)
//	s, _ := session.New(l, pfs)
//	_ = s.Run(context.Background(), 0)
//	for _, v := range s.Snapshot() {
//		fmt.Println(v.Name, v.Stats.PathCost, v.Stats.Explored)
//	}
package pathrace
