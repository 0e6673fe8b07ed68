// Package pathfinder defines the contract shared by every step-wise search
// engine in pathrace, plus the pieces they have in common: the environment
// capability, path reconstruction and path validation.
//
// What
//
//   - Environment: the read-only view of the world an engine searches
//     (IsOpen and Cost). *grid.Grid satisfies it.
//   - Pathfinder: Initialize once per run, then Step repeatedly. Each Step
//     performs exactly one unit of work and returns the Points it explored,
//     in up, right, down, left neighbor order.
//   - None: a pathfinder that never does anything; useful for empty slots.
//   - Reconstruct: walks predecessor links back from the target and returns
//     the path in start→target order.
//   - ValidatePath: checks that a path is a simple, 4-connected walk between
//     two endpoints.
//
// Run lifecycle
//
//	Initialize(start, target)   discard everything, seed the frontier
//	Step()                      pop one point, expand it, report explored
//	Solution()                  nil until the target has been confirmed
//	Frontier()                  points still waiting, unordered
//
// A run is over when Solution is non-nil, or when Frontier is empty and
// Solution is nil (the target is unreachable). Every Step after that is a
// no-op returning an empty slice. Calling Initialize again is the only way
// to cancel or restart a run.
//
// Concurrency
//
//	Pathfinders are single-threaded. Separate instances share nothing but
//	the Environment, which must not change while a run is in progress.
package pathfinder
