package bestfirst

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/pathfinder"
)

// node is the registry record of one Point for the current run.
type node struct {
	g, f    float64
	from    grid.Point
	hasFrom bool
	closed  bool
}

// Engine is a step-wise best-first search. Build it with New or one of the
// variant constructors; the zero value is not usable.
type Engine struct {
	env  pathfinder.Environment
	opts Options

	target   grid.Point
	nodes    map[grid.Point]*node
	open     map[grid.Point]struct{}
	pq       entryPQ
	seq      uint64
	solution []grid.Point
}

// New returns an Engine over env configured by opts. Until Initialize is
// called every Step is a no-op.
//
// Returns pathfinder.ErrNilEnvironment for a nil env and an
// ErrOptionViolation-wrapped error for an invalid option.
func New(env pathfinder.Environment, opts ...Option) (*Engine, error) {
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

	e := &Engine{env: env, opts: o}
	e.reset()

	return e, nil
}

// reset drops all per-run state.
func (e *Engine) reset() {
	e.nodes = make(map[grid.Point]*node)
	e.open = make(map[grid.Point]struct{})
	e.pq = e.pq[:0]
	e.seq = 0
	e.solution = nil
}

// Initialize implements pathfinder.Pathfinder. The start node gets g = 0 and
// f = h(start, target) and is the only frontier entry.
func (e *Engine) Initialize(start, target grid.Point) {
	e.reset()
	e.target = target

	n := &node{g: 0, f: e.opts.Heuristic(start, target)}
	e.nodes[start] = n
	e.push(start, n.f)
}

// Step implements pathfinder.Pathfinder.
func (e *Engine) Step() []grid.Point {
	explored := make([]grid.Point, 0, 4)

	cur, n, ok := e.pop()
	if !ok {
		return explored
	}

	if cur == e.target && e.solution == nil {
		e.solution = pathfinder.Reconstruct(cur, e.prev)
	}
	n.closed = true

	for _, next := range grid.Neighbors(cur) {
		if !e.env.IsOpen(next) {
			continue
		}
		m := e.nodes[next]
		if m != nil && m.closed {
			continue
		}
		explored = append(explored, next)

		tentative := e.opts.Cost(n.g, e.env.Cost(next))
		if m == nil {
			m = &node{g: math.Inf(1), f: math.Inf(1)}
			e.nodes[next] = m
		}
		if tentative >= m.g {
			continue
		}
		m.g = tentative
		m.f = tentative + e.opts.Heuristic(next, e.target)
		m.from, m.hasFrom = cur, true
		e.push(next, m.f)
	}

	return explored
}

// push records a frontier entry for p with priority f.
func (e *Engine) push(p grid.Point, f float64) {
	heap.Push(&e.pq, entry{p: p, f: f, seq: e.seq})
	e.seq++
	e.open[p] = struct{}{}
}

// pop removes and returns the live entry with the smallest f, discarding
// closed and superseded entries on the way.
func (e *Engine) pop() (grid.Point, *node, bool) {
	for e.pq.Len() > 0 {
		it := heap.Pop(&e.pq).(entry)
		n := e.nodes[it.p]
		if n.closed || it.f != n.f {
			continue
		}
		delete(e.open, it.p)
		return it.p, n, true
	}
	return grid.Point{}, nil, false
}

func (e *Engine) prev(p grid.Point) (grid.Point, bool) {
	n := e.nodes[p]
	if n == nil || !n.hasFrom {
		return grid.Point{}, false
	}
	return n.from, true
}

// Solution implements pathfinder.Pathfinder.
func (e *Engine) Solution() []grid.Point { return e.solution }

// Frontier implements pathfinder.Pathfinder; the order is unspecified.
func (e *Engine) Frontier() []grid.Point {
	out := make([]grid.Point, 0, len(e.open))
	for p := range e.open {
		out = append(out, p)
	}
	return out
}

// Name implements pathfinder.Pathfinder.
func (e *Engine) Name() string { return e.opts.Name }

// Score returns the registry g and f of p for the current run. ok is false
// for Points the run has not discovered.
func (e *Engine) Score(p grid.Point) (g, f float64, ok bool) {
	n := e.nodes[p]
	if n == nil || math.IsInf(n.g, 1) {
		return math.Inf(1), math.Inf(1), false
	}
	return n.g, n.f, true
}

// Closed reports whether p has been expanded in the current run.
func (e *Engine) Closed(p grid.Point) bool {
	n := e.nodes[p]
	return n != nil && n.closed
}

var _ pathfinder.Pathfinder = (*Engine)(nil)
