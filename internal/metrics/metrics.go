// Package metrics exports session events as Prometheus series.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathrace/session"
)

const namespace = "pathrace"

// Recorder is a session.Observer backed by Prometheus collectors.
type Recorder struct {
	steps        *prometheus.CounterVec
	explored     *prometheus.CounterVec
	solutions    *prometheus.CounterVec
	exhausted    *prometheus.CounterVec
	pathCost     *prometheus.HistogramVec
	stepDuration *prometheus.HistogramVec
	sessions     prometheus.Gauge
}

var _ session.Observer = (*Recorder)(nil)

// NewRecorder registers the pathrace collectors on reg. A nil reg means
// prometheus.DefaultRegisterer. Registering twice on the same registry panics.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Recorder{
		steps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Pathfinder steps by algorithm",
		}, []string{"algorithm"}),
		explored: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "explored_cells_total",
			Help:      "Cells reported as explored by algorithm",
		}, []string{"algorithm"}),
		solutions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solutions_total",
			Help:      "Searches that reached the target",
		}, []string{"algorithm"}),
		exhausted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exhausted_total",
			Help:      "Searches that ran out of frontier",
		}, []string{"algorithm"}),
		pathCost: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_cost",
			Help:      "Cost of found paths",
			Buckets:   prometheus.ExponentialBuckets(4, 2, 10),
		}, []string{"algorithm"}),
		stepDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Wall time of a single pathfinder step",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"algorithm"}),
		sessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Sessions currently held by the server",
		}),
	}
}

func (r *Recorder) ObserveStep(algorithm string, explored int, elapsed time.Duration) {
	r.steps.WithLabelValues(algorithm).Inc()
	r.explored.WithLabelValues(algorithm).Add(float64(explored))
	r.stepDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveSolution(algorithm string, st session.Stats) {
	r.solutions.WithLabelValues(algorithm).Inc()
	r.pathCost.WithLabelValues(algorithm).Observe(float64(st.PathCost))
}

func (r *Recorder) ObserveExhausted(algorithm string, _ session.Stats) {
	r.exhausted.WithLabelValues(algorithm).Inc()
}

// SessionOpened and SessionClosed track the number of live sessions.
func (r *Recorder) SessionOpened() { r.sessions.Inc() }

func (r *Recorder) SessionClosed() { r.sessions.Dec() }
