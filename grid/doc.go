// Package grid models the rectangular, 4-connected cost grid that every
// pathfinder in pathrace searches.
//
// What:
//
//   - Point is an immutable (X, Y) coordinate usable as a map key.
//   - Grid wraps a rectangular [][]int of cell costs: Wall (0) is impassable,
//     1..MaxCost is the cost to enter the cell.
//   - Grid implements the environment capability consumed by the engines:
//     IsOpen(p) and Cost(p).
//   - Layout bundles a Grid with its start and target Points and has a
//     compact text format (see Parse).
//   - Reachable and ConnectedComponents flood-fill open cells.
//
// Neighbor order:
//
//	Neighbors are always produced up, right, down, left:
//	(0,-1), (1,0), (0,1), (-1,0). Engines rely on this order for the
//	per-step explored list.
//
// Contract:
//
//   - IsOpen returns false for out-of-bounds points and walls.
//   - Cost panics with an error wrapping ErrOutOfBounds when called on an
//     out-of-bounds point. Callers are expected to check IsOpen first.
//   - A Grid is not safe for concurrent mutation. It may be edited freely
//     before a search starts and must be treated as immutable afterwards.
//
// Complexity:
//
//   - IsOpen, Cost, Set: O(1).
//   - Reachable, ConnectedComponents: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:       no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrInvalidCost:     a cell value outside [Wall, MaxCost].
//   - ErrOutOfBounds:     a coordinate outside the grid.
//   - ErrMissingEndpoint: a layout without exactly one S and one T.
//   - ErrBadGlyph:        an unknown character in a layout.
package grid
