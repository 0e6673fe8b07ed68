package bfs

import (
	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/pathfinder"
)

// compactMin is the consumed-prefix length below which dequeue never
// compacts the queue.
const compactMin = 64

// Search is a step-wise breadth-first search. Build it with New.
type Search struct {
	env  pathfinder.Environment
	opts Options

	target   grid.Point
	queue    []grid.Point
	head     int
	closed   map[grid.Point]bool
	prev     map[grid.Point]grid.Point
	depth    map[grid.Point]int
	solution []grid.Point
}

// New returns a Search over env. Until Initialize is called every Step is a
// no-op. Returns pathfinder.ErrNilEnvironment for a nil env, or an
// ErrOptionViolation-wrapped error for a bad option.
func New(env pathfinder.Environment, opts ...Option) (*Search, error) {
	if env == nil {
		return nil, pathfinder.ErrNilEnvironment
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &Search{env: env, opts: o}
	s.reset()

	return s, nil
}

func (s *Search) reset() {
	s.queue, s.head = nil, 0
	s.closed = make(map[grid.Point]bool)
	s.prev = make(map[grid.Point]grid.Point)
	s.depth = make(map[grid.Point]int)
	s.solution = nil
}

// Initialize implements pathfinder.Pathfinder.
func (s *Search) Initialize(start, target grid.Point) {
	s.reset()
	s.target = target
	s.depth[start] = 0
	s.enqueue(start)
}

// enqueue appends p and fires OnEnqueue.
func (s *Search) enqueue(p grid.Point) {
	s.queue = append(s.queue, p)
	s.opts.OnEnqueue(p, s.depth[p])
}

// dequeue pops Points until one that is not closed turns up.
func (s *Search) dequeue() (grid.Point, bool) {
	for s.head < len(s.queue) {
		p := s.queue[s.head]
		s.head++
		s.compact()
		if s.closed[p] {
			continue
		}
		s.opts.OnDequeue(p, s.depth[p])
		return p, true
	}
	return grid.Point{}, false
}

// compact moves the live tail to the front once the consumed head is at
// least half of the queue.
func (s *Search) compact() {
	if s.head < compactMin || s.head*2 < len(s.queue) {
		return
	}
	n := copy(s.queue, s.queue[s.head:])
	clear(s.queue[n:])
	s.queue, s.head = s.queue[:n], 0
}

// Step implements pathfinder.Pathfinder.
func (s *Search) Step() []grid.Point {
	explored := make([]grid.Point, 0, 4)

	cur, ok := s.dequeue()
	if !ok {
		return explored
	}
	if cur == s.target && s.solution == nil {
		// only reachable when start == target
		s.solution = pathfinder.Reconstruct(cur, s.lookup)
	}
	s.closed[cur] = true

	for _, next := range grid.Neighbors(cur) {
		if !s.env.IsOpen(next) || s.closed[next] {
			continue
		}
		if _, seen := s.depth[next]; !seen {
			s.prev[next] = cur
			s.depth[next] = s.depth[cur] + 1
		}
		s.enqueue(next)
		explored = append(explored, next)

		if next == s.target && s.solution == nil {
			s.solution = pathfinder.Reconstruct(next, s.lookup)
		}
	}

	return explored
}

func (s *Search) lookup(p grid.Point) (grid.Point, bool) {
	q, ok := s.prev[p]
	return q, ok
}

// Solution implements pathfinder.Pathfinder.
func (s *Search) Solution() []grid.Point { return s.solution }

// Frontier implements pathfinder.Pathfinder: the distinct queued Points that
// are not closed yet.
func (s *Search) Frontier() []grid.Point {
	live := s.queue[s.head:]
	seen := make(map[grid.Point]struct{}, len(live))
	out := make([]grid.Point, 0, len(live))
	for _, p := range live {
		if s.closed[p] {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Name implements pathfinder.Pathfinder.
func (s *Search) Name() string { return s.opts.Name }

// Depth returns the hop count at which p was first discovered in the
// current run.
func (s *Search) Depth(p grid.Point) (int, bool) {
	d, ok := s.depth[p]
	return d, ok
}

var _ pathfinder.Pathfinder = (*Search)(nil)
