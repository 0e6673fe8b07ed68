// Package maze builds the preset layouts a comparison session starts from.
//
// Presets
//
//	Blank               every cell cost 1
//	                    start (W/4, H/2), target (W−W/4, H/2)
//	Maze                perfect maze carved from (0,0) by a randomized
//	                    depth-first backtracker on even coordinates
//	                    start (0,0), target at the last carved cell:
//	                    (W−1, H−1) rounded down to even coordinates
//	WeightedMaze        Maze whose remaining walls become costs 6..10
//	Randomized          ¼ walls, ¼ cost 1, ½ costs 2..10
//	                    start (1,1), target (W−2, H−2)
//	Gradient            cost peaks (10) on the horizontal centre row and
//	                    falls to 1 at the top and bottom edges
//	                    start (1, H/2), target (W−2, H/2)
//	RandomizedGradient  Gradient with each cell reduced by a random share
//
// Determinism
//
// Every preset is a pure function of (width, height, seed). Seed 0 selects a
// fixed default seed, so "no seed" is still reproducible. The carver keeps an
// explicit stack instead of recursing, so large mazes do not grow the
// goroutine stack.
//
// Start and target cells are always open (cost 1) whatever the generator
// put there.
//
// Errors
//
//	ErrTooSmall       width or height below MinSize
//	ErrTooLarge       width or height above MaxSize
//	ErrUnknownPreset  ParsePreset or Build got an unrecognized preset
package maze
