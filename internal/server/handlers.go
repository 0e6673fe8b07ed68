package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathrace/algorithms"
	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/maze"
	"github.com/katalvlaran/pathrace/render"
	"github.com/katalvlaran/pathrace/session"
)

type algorithmInfo struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

type sessionResponse struct {
	ID      string             `json:"id"`
	Created time.Time          `json:"created"`
	Preset  string             `json:"preset"`
	Width   int                `json:"width"`
	Height  int                `json:"height"`
	Start   grid.Point         `json:"start"`
	Target  grid.Point         `json:"target"`
	Layout  string             `json:"layout"`
	Rounds  int                `json:"rounds"`
	Done    bool               `json:"done"`
	Slots   []session.SlotView `json:"slots"`
	Summary session.Summary    `json:"summary"`
}

type stepResponse struct {
	Rounds  [][]session.Report `json:"rounds"`
	Done    bool               `json:"done"`
	Summary session.Summary    `json:"summary"`
}

type cellEdit struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Value int `json:"value"`
}

type editRequest struct {
	Cells  []cellEdit  `json:"cells"`
	Start  *grid.Point `json:"start,omitempty"`
	Target *grid.Point `json:"target,omitempty"`
}

func (s *Server) view(e *entry) sessionResponse {
	l := e.sess.Layout()
	return sessionResponse{
		ID:      e.id,
		Created: e.created,
		Preset:  e.preset,
		Width:   l.Grid.Width,
		Height:  l.Grid.Height,
		Start:   l.Start,
		Target:  l.Target,
		Layout:  l.String(),
		Rounds:  e.sess.Rounds(),
		Done:    e.sess.Done(),
		Slots:   e.sess.Snapshot(),
		Summary: e.sess.Summary(),
	}
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, _ *http.Request) {
	kinds := algorithms.Kinds()
	out := make([]algorithmInfo, len(kinds))
	for i, k := range kinds {
		out[i] = algorithmInfo{Kind: k.String(), Name: k.DisplayName()}
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	presets := maze.Presets()
	out := make([]string, len(presets))
	for i, p := range presets {
		out[i] = p.String()
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if r.ContentLength != 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.respondError(w, fmt.Errorf("%w: invalid request body: %w", ErrBadRequest, err))
			return
		}
	}

	e, err := s.newSession(req)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.store(e)
	s.log.Info("session created",
		zap.String("session_id", e.id),
		zap.String("preset", e.preset))

	w.Header().Set("Location", "/api/v1/sessions/"+e.id)
	s.respondJSON(w, http.StatusCreated, s.view(e))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	e, err := s.lookup(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, s.view(e))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.sessionsMu.Lock()
	ok := s.drop(id)
	s.sessionsMu.Unlock()
	if !ok {
		s.respondError(w, fmt.Errorf("%w: %s", ErrSessionNotFound, id))
		return
	}
	s.log.Info("session deleted", zap.String("session_id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	e, err := s.lookup(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	var req editRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, fmt.Errorf("%w: invalid request body: %w", ErrBadRequest, err))
		return
	}

	err = e.sess.Edit(func(l *grid.Layout) error {
		for _, c := range req.Cells {
			if err := l.Grid.Set(grid.Point{X: c.X, Y: c.Y}, c.Value); err != nil {
				return err
			}
		}
		if req.Start != nil {
			l.Start = *req.Start
		}
		if req.Target != nil {
			l.Target = *req.Target
		}
		return nil
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, s.view(e))
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	e, err := s.lookup(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	count, err := intQuery(r, "count", 1, 1, maxStepCount)
	if err != nil {
		s.respondError(w, err)
		return
	}

	resp := stepResponse{Rounds: make([][]session.Report, 0, count)}
	for i := 0; i < count && !e.sess.Done(); i++ {
		resp.Rounds = append(resp.Rounds, e.sess.Step())
	}
	resp.Done = e.sess.Done()
	resp.Summary = e.sess.Summary()
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	e, err := s.lookup(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	if err := e.sess.Run(r.Context(), 0); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, s.view(e))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	e, err := s.lookup(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	e.sess.Reset()
	s.respondJSON(w, http.StatusOK, s.view(e))
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	e, err := s.lookup(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	opts := render.DefaultOptions()
	if opts.CellSize, err = intQuery(r, "cell", s.cfg.Render.CellSize, 1, 64); err != nil {
		s.respondError(w, err)
		return
	}
	if opts.Columns, err = intQuery(r, "columns", s.cfg.Render.Columns, 1, 16); err != nil {
		s.respondError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := render.PNG(&buf, e.sess.Layout(), e.sess.Snapshot(), opts); err != nil {
		s.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	e, err := s.lookup(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	views := e.sess.Snapshot()
	if r.URL.Query().Has("slot") {
		i, err := intQuery(r, "slot", 0, 0, len(views)-1)
		if err != nil {
			s.respondError(w, err)
			return
		}
		views = views[i : i+1]
	}

	var buf bytes.Buffer
	layout := e.sess.Layout()
	for i, v := range views {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := render.Text(&buf, layout, v); err != nil {
			s.respondError(w, err)
			return
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// intQuery reads an integer query parameter in [lo, hi], def when absent.
func intQuery(r *http.Request, key string, def, lo, hi int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		return 0, fmt.Errorf("%w: %s=%q, want an integer in [%d, %d]", ErrBadRequest, key, raw, lo, hi)
	}
	return v, nil
}

func (s *Server) respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Warn("encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		s.log.Error("Request error", zap.Int("status", code), zap.Error(err))
	} else {
		s.log.Debug("Request rejected", zap.Int("status", code), zap.Error(err))
	}
	s.respondJSON(w, code, map[string]string{"error": err.Error()})
}
