package session

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathrace/grid"
)

// Sentinel errors.
var (
	ErrNoSlots         = errors.New("session: no pathfinders supplied")
	ErrNilLayout       = errors.New("session: layout is nil")
	ErrNilPathfinder   = errors.New("session: pathfinder is nil")
	ErrEndpointBlocked = errors.New("session: start or target is not an open cell")
	ErrSessionStarted  = errors.New("session: layout cannot change once stepping has begun")
	ErrResized         = errors.New("session: edit changed the grid dimensions")
	ErrStepLimit       = errors.New("session: step limit reached")
)

// Stats are the per-slot figures shown next to each run.
type Stats struct {
	Steps      int  `json:"steps"`
	Explored   int  `json:"explored"`
	PathLength int  `json:"path_length"`
	PathCost   int  `json:"path_cost"`
	Found      bool `json:"found"`
	Exhausted  bool `json:"exhausted"`
}

// Done reports whether the slot has stopped advancing.
func (s Stats) Done() bool { return s.Found || s.Exhausted }

// Report is what one slot did in one round.
type Report struct {
	Slot     int          `json:"slot"`
	Name     string       `json:"name"`
	Explored []grid.Point `json:"explored"`
	Stats    Stats        `json:"stats"`
}

// SlotView is a read-only copy of one slot's state.
type SlotView struct {
	Slot     int          `json:"slot"`
	Name     string       `json:"name"`
	Explored []grid.Point `json:"explored"` // distinct cells in discovery order
	Frontier []grid.Point `json:"frontier"`
	Solution []grid.Point `json:"solution,omitempty"`
	Stats    Stats        `json:"stats"`
}

// Observer receives run events, e.g. for metrics. Calls happen under the
// session lock and must not call back into the Session.
type Observer interface {
	ObserveStep(algorithm string, explored int, elapsed time.Duration)
	ObserveSolution(algorithm string, st Stats)
	ObserveExhausted(algorithm string, st Stats)
}

type nopObserver struct{}

func (nopObserver) ObserveStep(string, int, time.Duration) {}
func (nopObserver) ObserveSolution(string, Stats)          {}
func (nopObserver) ObserveExhausted(string, Stats)         {}

// Option configures a Session.
type Option func(*Options)

// Options holds Session dependencies and limits.
type Options struct {
	Logger   *zap.Logger
	Observer Observer
	// MaxSteps bounds the number of rounds Run performs; 0 means no bound.
	MaxSteps int
}

// DefaultOptions returns a silent, unbounded configuration.
func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		Observer: nopObserver{},
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver sets the event observer. nil is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithMaxSteps bounds Run. Negative values are treated as 0.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxSteps = n
	}
}
