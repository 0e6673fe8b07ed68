// Package algorithms is the catalog of pathfinders a comparison slot can
// hold.
//
// It provides:
//
//   - Kind, a tagged variant naming one algorithm (None, BFS, Dijkstra,
//     A*, Euclidean A*, Weighted A*, Tiebreaker A*, Greedy Best-First).
//   - Kinds, the catalog in display order.
//   - ParseKind, accepting either the slug ("astar") or the display name
//     ("A*"), case-insensitively.
//   - New, building a fresh pathfinder.Pathfinder of a Kind over an
//     Environment.
//   - DefaultSlots, the four-slot line-up Dijkstra, BFS, A*, Greedy.
//
// A slot's algorithm is chosen when the pathfinder is built; swapping it
// means building a new one.
package algorithms
