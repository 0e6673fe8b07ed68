package pathfinder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathrace/grid"
)

// Path validation errors.
var (
	// ErrEmptyPath is returned for a nil or empty path.
	ErrEmptyPath = errors.New("pathfinder: path is empty")
	// ErrPathEndpoints is returned when a path does not run start→target.
	ErrPathEndpoints = errors.New("pathfinder: path does not connect start and target")
	// ErrPathDisconnected is returned when consecutive Points are not orthogonal neighbors.
	ErrPathDisconnected = errors.New("pathfinder: consecutive points are not adjacent")
	// ErrPathRepeats is returned when a path visits a Point twice.
	ErrPathRepeats = errors.New("pathfinder: path revisits a point")
)

// Reconstruct builds the start→target path ending at target by following
// prev until a Point without a predecessor is reached.
//
// prev must describe a forest: following it from target has to terminate.
// Complexity: O(L) for a path of L Points.
func Reconstruct(target grid.Point, prev func(grid.Point) (grid.Point, bool)) []grid.Point {
	path := []grid.Point{target}
	for cur := target; ; {
		p, ok := prev(cur)
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get start → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// ValidatePath checks that path starts at start, ends at target, moves one
// unit along one axis per hop and never repeats a Point.
func ValidatePath(path []grid.Point, start, target grid.Point) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if path[0] != start || path[len(path)-1] != target {
		return fmt.Errorf("%w: got %v→%v, want %v→%v",
			ErrPathEndpoints, path[0], path[len(path)-1], start, target)
	}
	seen := make(map[grid.Point]struct{}, len(path))
	for i, p := range path {
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: %v at index %d", ErrPathRepeats, p, i)
		}
		seen[p] = struct{}{}
		if i > 0 && path[i-1].Manhattan(p) != 1 {
			return fmt.Errorf("%w: %v→%v", ErrPathDisconnected, path[i-1], p)
		}
	}
	return nil
}

// PathCost sums env.Cost over every Point after the first, i.e. the cost of
// walking the path from its start. A nil path costs 0.
func PathCost(env Environment, path []grid.Point) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += env.Cost(path[i])
	}
	return total
}
