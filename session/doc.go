// Package session drives a side-by-side comparison of pathfinders on one
// shared layout.
//
// A Session owns the layout and an ordered list of slots, each holding a
// pathfinder.Pathfinder. Every call to Step is one round: each slot that is
// not done advances by exactly one pathfinder step. The same Pathfinder
// instance placed in several slots is stepped once per round and its result
// is shared by those slots.
//
// Lifecycle
//
//	New     validate the layout, wrap the pathfinders in slots
//	Edit    change the grid or endpoints; only before the first Step
//	Step    first call initializes every pathfinder, then one round
//	Run     Step until every slot is done, the context ends or MaxSteps
//	Reset   drop progress; the next Step re-initializes and Edit works again
//
// Statistics
//
// A slot is done once its pathfinder reports a solution (Found) or an empty
// frontier without one (Exhausted). Steps counts the rounds a slot took
// part in; PathLength is the number of hops; PathCost is the sum of cell
// costs along the path, the start cell excluded. Explored counts distinct
// cells ever reported by the slot.
//
// Concurrency
//
// All methods are safe for concurrent use. Pathfinders are only ever driven
// under the session lock, and the grid must not be touched from outside
// while a run is in progress.
package session
