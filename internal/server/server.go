// Package server exposes comparison sessions over HTTP.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathrace/algorithms"
	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/internal/config"
	"github.com/katalvlaran/pathrace/internal/metrics"
	"github.com/katalvlaran/pathrace/maze"
	"github.com/katalvlaran/pathrace/session"
)

// Errors returned to clients.
var (
	ErrSessionNotFound = errors.New("server: session not found")
	ErrBadRequest      = errors.New("server: bad request")
)

const (
	// maxStepCount bounds ?count= on the step endpoint.
	maxStepCount = 10000
	// maxBodyBytes bounds create and edit request bodies.
	maxBodyBytes = 1 << 20
)

// entry is one live session.
type entry struct {
	id      string
	created time.Time
	preset  string
	sess    *session.Session
}

// Server holds sessions in memory, keyed by UUID.
type Server struct {
	cfg     *config.Config
	log     *zap.Logger
	metrics *metrics.Recorder

	sessions   map[string]*entry
	sessionsMu sync.RWMutex
}

// NewServer creates a server. rec may be nil to disable metrics.
func NewServer(cfg *config.Config, logger *zap.Logger, rec *metrics.Recorder) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		cfg:      cfg,
		log:      logger.Named("server"),
		metrics:  rec,
		sessions: make(map[string]*entry),
	}
}

func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/algorithms", s.handleAlgorithms)
		r.Get("/presets", s.handlePresets)
		r.Post("/sessions", s.handleCreate)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Put("/cells", s.handleEdit)
			r.Post("/step", s.handleStep)
			r.Post("/run", s.handleRun)
			r.Post("/reset", s.handleReset)
			r.Get("/image.png", s.handleImage)
			r.Get("/text", s.handleText)
		})
	})
}

// Len returns the number of live sessions.
func (s *Server) Len() int {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()
	return len(s.sessions)
}

// Close drops every session.
func (s *Server) Close() error {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	for id := range s.sessions {
		s.drop(id)
	}
	return nil
}

func (s *Server) lookup(id string) (*entry, error) {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return e, nil
}

func (s *Server) store(e *entry) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	s.sessions[e.id] = e
	if s.metrics != nil {
		s.metrics.SessionOpened()
	}
}

// drop must be called with sessionsMu held.
func (s *Server) drop(id string) bool {
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	if s.metrics != nil {
		s.metrics.SessionClosed()
	}
	return true
}

// createRequest describes a new session. Zero fields take the configured
// defaults. Layout, when set, is a text layout and overrides the preset.
type createRequest struct {
	Width      int      `json:"width,omitempty"`
	Height     int      `json:"height,omitempty"`
	Preset     string   `json:"preset,omitempty"`
	Seed       int64    `json:"seed,omitempty"`
	Layout     string   `json:"layout,omitempty"`
	Algorithms []string `json:"algorithms,omitempty"`
}

// newSession builds the layout and pathfinders for req.
func (s *Server) newSession(req createRequest) (*entry, error) {
	var (
		layout *grid.Layout
		preset string
		err    error
	)
	if req.Layout != "" {
		layout, err = grid.Parse(req.Layout)
		if err != nil {
			return nil, err
		}
		if w, h := layout.Grid.Width, layout.Grid.Height; w > maze.MaxSize || h > maze.MaxSize {
			return nil, fmt.Errorf("%w: %dx%d layout, at most %dx%d", maze.ErrTooLarge, w, h, maze.MaxSize, maze.MaxSize)
		}
		preset = "custom"
	} else {
		w, h := req.Width, req.Height
		if w == 0 {
			w = s.cfg.Grid.Width
		}
		if h == 0 {
			h = s.cfg.Grid.Height
		}
		name := req.Preset
		if name == "" {
			name = s.cfg.Grid.Preset
		}
		seed := req.Seed
		if seed == 0 {
			seed = s.cfg.Grid.Seed
		}
		p, err := maze.ParsePreset(name)
		if err != nil {
			return nil, err
		}
		if layout, err = maze.Build(p, w, h, seed); err != nil {
			return nil, err
		}
		preset = p.String()
	}

	kinds, err := s.cfg.Kinds()
	if err != nil {
		return nil, err
	}
	if len(req.Algorithms) > 0 {
		kinds = make([]algorithms.Kind, 0, len(req.Algorithms))
		for _, name := range req.Algorithms {
			k, err := algorithms.ParseKind(name)
			if err != nil {
				return nil, err
			}
			kinds = append(kinds, k)
		}
	}
	pfs, err := algorithms.NewAll(kinds, layout.Grid)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	opts := []session.Option{
		session.WithLogger(s.log.With(zap.String("session_id", id))),
		session.WithMaxSteps(s.cfg.Session.MaxSteps),
	}
	if s.metrics != nil {
		opts = append(opts, session.WithObserver(s.metrics))
	}
	sess, err := session.New(layout, pfs, opts...)
	if err != nil {
		return nil, err
	}

	return &entry{id: id, created: time.Now().UTC(), preset: preset, sess: sess}, nil
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	var tooBig *http.MaxBytesError
	switch {
	case errors.As(err, &tooBig):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrSessionStarted):
		return http.StatusConflict
	case errors.Is(err, session.ErrStepLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, grid.ErrEmptyGrid),
		errors.Is(err, grid.ErrNonRectangular),
		errors.Is(err, grid.ErrInvalidCost),
		errors.Is(err, grid.ErrOutOfBounds),
		errors.Is(err, grid.ErrMissingEndpoint),
		errors.Is(err, grid.ErrBadGlyph),
		errors.Is(err, maze.ErrTooSmall),
		errors.Is(err, maze.ErrTooLarge),
		errors.Is(err, maze.ErrUnknownPreset),
		errors.Is(err, algorithms.ErrUnknownKind),
		errors.Is(err, session.ErrEndpointBlocked),
		errors.Is(err, session.ErrResized),
		errors.Is(err, session.ErrNoSlots):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
