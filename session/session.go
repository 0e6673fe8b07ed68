package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/pathfinder"
)

// slot is one comparison lane.
type slot struct {
	pf       pathfinder.Pathfinder
	explored []grid.Point
	seen     map[grid.Point]struct{}
	stats    Stats
}

func (s *slot) reset() {
	s.explored = nil
	s.seen = make(map[grid.Point]struct{})
	s.stats = Stats{}
}

// Session is a comparison run over one layout. Build it with New.
type Session struct {
	mu      sync.Mutex
	layout  *grid.Layout
	slots   []*slot
	opts    Options
	log     *zap.Logger
	started bool
	rounds  int
}

// New validates layout and wraps finders in slots, in order. The
// pathfinders must search layout.Grid; the Session does not rebind them.
// Pathfinders are told apart by identity, so they must be comparable
// (pointers or empty structs).
func New(layout *grid.Layout, finders []pathfinder.Pathfinder, opts ...Option) (*Session, error) {
	if layout == nil || layout.Grid == nil {
		return nil, ErrNilLayout
	}
	if len(finders) == 0 {
		return nil, ErrNoSlots
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEndpointBlocked, err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		layout: layout,
		slots:  make([]*slot, len(finders)),
		opts:   o,
		log:    o.Logger.Named("session"),
	}
	for i, pf := range finders {
		if pf == nil {
			return nil, fmt.Errorf("%w: slot %d", ErrNilPathfinder, i)
		}
		s.slots[i] = &slot{pf: pf}
		s.slots[i].reset()
	}

	return s, nil
}

// Layout returns a copy of the session's layout. Use Edit to change it.
func (s *Session) Layout() *grid.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout.Clone()
}

// Started reports whether stepping has begun since creation or the last Reset.
func (s *Session) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Rounds returns the number of Step calls since the last Reset.
func (s *Session) Rounds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rounds
}

// Edit applies fn to a copy of the layout and commits it if the result still
// has the same dimensions and open endpoints. Edits are refused once
// stepping has begun.
func (s *Session) Edit(fn func(l *grid.Layout) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrSessionStarted
	}
	draft := s.layout.Clone()
	if err := fn(draft); err != nil {
		return err
	}
	if draft.Grid == nil || draft.Grid.Width != s.layout.Grid.Width || draft.Grid.Height != s.layout.Grid.Height {
		return ErrResized
	}
	if err := draft.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrEndpointBlocked, err)
	}

	// copy cells in place: the pathfinders hold s.layout.Grid
	rows := draft.Grid.Rows()
	for y, row := range rows {
		for x, v := range row {
			if err := s.layout.Grid.Set(grid.Point{X: x, Y: y}, v); err != nil {
				return err
			}
		}
	}
	s.layout.Start, s.layout.Target = draft.Start, draft.Target
	s.log.Debug("layout edited",
		zap.Stringer("start", draft.Start),
		zap.Stringer("target", draft.Target))

	return nil
}

// Reset discards all progress. The next Step re-initializes every slot.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.started = false
	s.rounds = 0
	for _, sl := range s.slots {
		sl.reset()
	}
	s.log.Debug("session reset")
}

// start initializes each distinct pathfinder once.
func (s *Session) start() {
	done := make(map[pathfinder.Pathfinder]bool, len(s.slots))
	for _, sl := range s.slots {
		if done[sl.pf] {
			continue
		}
		sl.pf.Initialize(s.layout.Start, s.layout.Target)
		done[sl.pf] = true
	}
	s.started = true
	s.log.Info("session started",
		zap.Int("slots", len(s.slots)),
		zap.Stringer("start", s.layout.Start),
		zap.Stringer("target", s.layout.Target))
}

// Step runs one round and returns a Report for every slot that advanced.
// Once every slot is done Step returns an empty slice.
func (s *Session) Step() []Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.start()
	}

	reports := make([]Report, 0, len(s.slots))
	stepped := make(map[pathfinder.Pathfinder][]grid.Point, len(s.slots))
	for i, sl := range s.slots {
		if sl.stats.Done() {
			continue
		}

		explored, ok := stepped[sl.pf]
		if !ok {
			began := time.Now()
			explored = sl.pf.Step()
			s.opts.Observer.ObserveStep(sl.pf.Name(), len(explored), time.Since(began))
			stepped[sl.pf] = explored
		}
		s.advance(i, sl, explored)

		reports = append(reports, Report{
			Slot:     i,
			Name:     sl.pf.Name(),
			Explored: append([]grid.Point(nil), explored...),
			Stats:    sl.stats,
		})
	}
	if len(reports) > 0 {
		s.rounds++
	}

	return reports
}

// advance folds one step's output into the slot's statistics.
func (s *Session) advance(i int, sl *slot, explored []grid.Point) {
	sl.stats.Steps++
	for _, p := range explored {
		if _, dup := sl.seen[p]; dup {
			continue
		}
		sl.seen[p] = struct{}{}
		sl.explored = append(sl.explored, p)
	}
	sl.stats.Explored = len(sl.explored)

	if path := sl.pf.Solution(); path != nil {
		sl.stats.Found = true
		sl.stats.PathLength = len(path) - 1
		sl.stats.PathCost = pathfinder.PathCost(s.layout.Grid, path)
		s.opts.Observer.ObserveSolution(sl.pf.Name(), sl.stats)
		s.log.Info("solution found",
			zap.Int("slot", i),
			zap.String("algorithm", sl.pf.Name()),
			zap.Int("cost", sl.stats.PathCost),
			zap.Int("length", sl.stats.PathLength),
			zap.Int("steps", sl.stats.Steps))
		return
	}
	if pathfinder.Exhausted(sl.pf) {
		sl.stats.Exhausted = true
		s.opts.Observer.ObserveExhausted(sl.pf.Name(), sl.stats)
		s.log.Info("search exhausted",
			zap.Int("slot", i),
			zap.String("algorithm", sl.pf.Name()),
			zap.Int("steps", sl.stats.Steps),
			zap.Int("explored", sl.stats.Explored))
	}
}

// Done reports whether every slot has found a path or run dry.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done()
}

func (s *Session) done() bool {
	for _, sl := range s.slots {
		if !sl.stats.Done() {
			return false
		}
	}
	return true
}

// Run steps the session until every slot is done, waiting delay between
// rounds. It returns ctx.Err() if ctx ends first and ErrStepLimit when
// MaxSteps rounds have run without finishing.
func (s *Session) Run(ctx context.Context, delay time.Duration) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Done() {
			return nil
		}
		if s.opts.MaxSteps > 0 && s.Rounds() >= s.opts.MaxSteps {
			s.log.Warn("step limit reached", zap.Int("max_steps", s.opts.MaxSteps))
			return fmt.Errorf("%w: %d rounds", ErrStepLimit, s.opts.MaxSteps)
		}

		s.Step()

		if delay <= 0 {
			continue
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

// Snapshot copies the state of every slot.
func (s *Session) Snapshot() []SlotView {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]SlotView, len(s.slots))
	for i, sl := range s.slots {
		v := SlotView{
			Slot:     i,
			Name:     sl.pf.Name(),
			Explored: append([]grid.Point(nil), sl.explored...),
			Stats:    sl.stats,
		}
		if s.started {
			v.Frontier = sl.pf.Frontier()
			if path := sl.pf.Solution(); path != nil {
				v.Solution = append([]grid.Point(nil), path...)
			}
		}
		views[i] = v
	}
	return views
}
