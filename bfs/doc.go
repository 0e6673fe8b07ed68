// Package bfs provides a step-wise breadth-first search over a 4-connected
// grid, implementing pathfinder.Pathfinder.
//
// What
//
//   - A FIFO queue of Points and a cameFrom map keyed by Point; no scores.
//   - Each Step dequeues one not-yet-closed Point (already-closed dequeues
//     are discarded in a loop within the same Step), closes it, and reports
//     every open, non-closed neighbor in up, right, down, left order.
//   - The first time the target is discovered as a neighbor the solution is
//     reconstructed on the spot.
//   - Hooks: OnEnqueue and OnDequeue observe the queue with hop depths.
//
// Why
//
//   - On uniform-cost grids the first discovery of a cell is at minimal hop
//     count, so the solution is a shortest path without any priority queue.
//   - Costs are ignored: on weighted grids BFS minimizes hops, not cost.
//
// Queue duplicates
//
//	A cell reachable from two expanded neighbors is enqueued twice. The
//	second copy is dropped on dequeue because the cell is already closed.
//	cameFrom and depth are fixed at first discovery.
//
// Complexity
//
//   - Time:   O(W×H) per run (each cell closed once, ≤ 4 enqueues per cell)
//   - Memory: O(W×H)
//
// Usage
//
//	search, err := bfs.New(g)
//	if err != nil {
//		// pathfinder.ErrNilEnvironment or ErrOptionViolation
//	}
//	search.Initialize(start, target)
//	for search.Solution() == nil && !pathfinder.Exhausted(search) {
//		draw(search.Step())
//	}
package bfs
