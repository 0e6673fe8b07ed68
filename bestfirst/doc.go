// Package bestfirst implements the step-wise best-first search engine shared
// by Dijkstra, A* and its variants, and Greedy Best-First Search on a
// 4-connected grid.
//
// What
//
// One Engine drives a node registry, a min-priority frontier and a closed set
// through one pop-and-expand cycle per Step. Variants differ only in two
// injected strategies:
//
//	Variant              Heuristic(p, t)          Tentative cost
//	Dijkstra             0                        g(cur) + cost(next)
//	A*                   Manhattan                g(cur) + cost(next)
//	A* (Euclidean)       Euclidean                g(cur) + cost(next)
//	Weighted A*          W × Manhattan, W > 1     g(cur) + cost(next)
//	Tiebreaker A*        1.001 × Manhattan        g(cur) + cost(next)
//	Greedy Best-First    Manhattan                cost(next)
//
// Step
//
//  1. Discard frontier entries that are closed or carry a stale score.
//  2. Pop the entry with the smallest f; equal f pops in insertion order.
//  3. If it is the target and no solution is recorded yet, reconstruct one.
//  4. Close it.
//  5. For each open, non-closed neighbor in up, right, down, left order:
//     report it as explored, compute the tentative cost and, when strictly
//     lower than the neighbor's g, point it at the current node and push it.
//
// Stale priorities
//
// The registry (one node per Point) is the only source of truth for g, f and
// the back-pointer. The heap holds (Point, f, seq) entries used for ordering
// only; an improvement pushes a fresh entry and the superseded one is dropped
// when popped because its f no longer matches the registry. This is the
// classic lazy decrease-key, the same trade-off the graph Dijkstra makes.
//
// Complexity
//
//	Time:  O(E log E) per run, E ≤ 4·V pushes
//	Space: O(V + E)
//
// Errors
//
//	pathfinder.ErrNilEnvironment  New was given a nil Environment
//	ErrOptionViolation            an Option received a nil strategy, an empty
//	                              name or a non-positive weight
package bestfirst
