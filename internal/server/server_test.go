package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/pathrace/internal/config"
	"github.com/katalvlaran/pathrace/internal/metrics"
	"github.com/katalvlaran/pathrace/internal/server"
)

type fixture struct {
	t   *testing.T
	srv *server.Server
	reg *prometheus.Registry
	ts  *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Grid.Width, cfg.Grid.Height = 9, 7

	reg := prometheus.NewRegistry()
	srv := server.NewServer(cfg, zaptest.NewLogger(t), metrics.NewRecorder(reg))
	r := chi.NewRouter()
	srv.RegisterRoutes(r)
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return &fixture{t: t, srv: srv, reg: reg, ts: ts}
}

// do sends a request and decodes a JSON response into out when non-nil.
func (f *fixture) do(method, path string, body any, out any) *http.Response {
	f.t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(f.t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, f.ts.URL+path, rd)
	require.NoError(f.t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(f.t, err)
	f.t.Cleanup(func() { resp.Body.Close() })
	if out != nil {
		require.NoError(f.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

type slotJSON struct {
	Name     string `json:"name"`
	Solution []struct {
		X, Y int
	} `json:"solution"`
	Stats struct {
		Found    bool `json:"found"`
		PathCost int  `json:"path_cost"`
		Steps    int  `json:"steps"`
	} `json:"stats"`
}

type sessionJSON struct {
	ID     string     `json:"id"`
	Preset string     `json:"preset"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Layout string     `json:"layout"`
	Rounds int        `json:"rounds"`
	Done   bool       `json:"done"`
	Slots  []slotJSON `json:"slots"`
	Error  string     `json:"error"`
}

func TestCatalogEndpoints(t *testing.T) {
	f := newFixture(t)

	var algs []struct{ Kind, Name string }
	resp := f.do(http.MethodGet, "/api/v1/algorithms", nil, &algs)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, algs, 8)
	assert.Equal(t, "astar", algs[3].Kind)
	assert.Equal(t, "A*", algs[3].Name)

	var presets []string
	f.do(http.MethodGet, "/api/v1/presets", nil, &presets)
	assert.Contains(t, presets, "weighted-maze")
}

func TestSessionLifecycle(t *testing.T) {
	f := newFixture(t)

	var created sessionJSON
	resp := f.do(http.MethodPost, "/api/v1/sessions", map[string]any{
		"preset":     "maze",
		"seed":       7,
		"algorithms": []string{"bfs", "astar"},
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode, created.Error)
	_, err := uuid.Parse(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/sessions/"+created.ID, resp.Header.Get("Location"))
	assert.Equal(t, "maze", created.Preset)
	assert.Equal(t, 9, created.Width)
	assert.Len(t, created.Slots, 2)
	assert.Equal(t, 1, f.srv.Len())

	base := "/api/v1/sessions/" + created.ID

	var stepped struct {
		Rounds [][]json.RawMessage `json:"rounds"`
	}
	resp = f.do(http.MethodPost, base+"/step?count=2", nil, &stepped)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, stepped.Rounds, 2)

	var ran sessionJSON
	resp = f.do(http.MethodPost, base+"/run", nil, &ran)
	require.Equal(t, http.StatusOK, resp.StatusCode, ran.Error)
	assert.True(t, ran.Done)
	for _, s := range ran.Slots {
		assert.True(t, s.Stats.Found, s.Name)
	}
	assert.Equal(t, ran.Slots[0].Stats.PathCost, ran.Slots[1].Stats.PathCost,
		"both are optimal on an unweighted maze")

	resp = f.do(http.MethodGet, base+"/image.png?cell=4", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	_, err = png.Decode(resp.Body)
	assert.NoError(t, err)

	resp = f.do(http.MethodGet, base+"/text?slot=1", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	text, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(text), "A*\nCost/Length/Steps: "))
	assert.Contains(t, string(text), "*")

	var reset sessionJSON
	f.do(http.MethodPost, base+"/reset", nil, &reset)
	assert.Zero(t, reset.Rounds)
	assert.False(t, reset.Done)

	expected := `
# HELP pathrace_sessions_active Sessions currently held by the server
# TYPE pathrace_sessions_active gauge
pathrace_sessions_active 1
`
	assert.NoError(t, testutil.GatherAndCompare(f.reg, strings.NewReader(expected), "pathrace_sessions_active"))

	resp = f.do(http.MethodDelete, base, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Zero(t, f.srv.Len())

	var gone sessionJSON
	resp = f.do(http.MethodGet, base, nil, &gone)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, gone.Error, "session not found")
}

func TestCreate_CustomLayoutAndEdit(t *testing.T) {
	f := newFixture(t)

	var created sessionJSON
	resp := f.do(http.MethodPost, "/api/v1/sessions", map[string]any{
		"layout":     "S...\n.##.\n...T",
		"algorithms": []string{"dijkstra"},
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode, created.Error)
	assert.Equal(t, "custom", created.Preset)
	assert.Equal(t, "S...\n.##.\n...T\n", created.Layout)
	base := "/api/v1/sessions/" + created.ID

	var edited sessionJSON
	resp = f.do(http.MethodPut, base+"/cells", map[string]any{
		"cells": []map[string]int{{"x": 1, "y": 0, "value": 9}},
	}, &edited)
	require.Equal(t, http.StatusOK, resp.StatusCode, edited.Error)
	assert.Equal(t, "S9..\n.##.\n...T\n", edited.Layout)

	var bad sessionJSON
	resp = f.do(http.MethodPut, base+"/cells", map[string]any{
		"cells": []map[string]int{{"x": 3, "y": 2, "value": 0}},
	}, &bad)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "walling the target")

	var ran sessionJSON
	f.do(http.MethodPost, base+"/run", nil, &ran)
	require.Len(t, ran.Slots, 1)
	assert.Equal(t, 5, ran.Slots[0].Stats.PathCost, "goes down and around the 9")

	var conflict sessionJSON
	resp = f.do(http.MethodPut, base+"/cells", map[string]any{"cells": []any{}}, &conflict)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreate_Rejected(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		body any
	}{
		{"unknown preset", map[string]any{"preset": "spiral"}},
		{"unknown algorithm", map[string]any{"algorithms": []string{"ida"}}},
		{"too small", map[string]any{"width": 2, "height": 2}},
		{"too large", map[string]any{"width": 100000, "height": 100000}},
		{"layout too wide", map[string]any{"layout": "S" + strings.Repeat(".", 600) + "\nT" + strings.Repeat(".", 600)}},
		{"bad glyph", map[string]any{"layout": "S?T"}},
		{"two starts", map[string]any{"layout": "S.S\n..T"}},
		{"malformed json", "{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out sessionJSON
			resp := f.do(http.MethodPost, "/api/v1/sessions", tt.body, &out)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, out.Error)
		})
	}
	assert.Zero(t, f.srv.Len())
}

func TestCreate_BodyTooLarge(t *testing.T) {
	f := newFixture(t)

	huge := "S" + strings.Repeat(".", 1<<20) + "T"
	var out sessionJSON
	resp := f.do(http.MethodPost, "/api/v1/sessions", map[string]any{"layout": huge}, &out)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.NotEmpty(t, out.Error)
	assert.Zero(t, f.srv.Len())

	var created sessionJSON
	f.do(http.MethodPost, "/api/v1/sessions", nil, &created)
	cells := make([]map[string]int, 60000)
	for i := range cells {
		cells[i] = map[string]int{"x": 1, "y": 1, "value": 2}
	}
	resp = f.do(http.MethodPut, "/api/v1/sessions/"+created.ID+"/cells", map[string]any{"cells": cells}, &out)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestEditWhileRendering(t *testing.T) {
	f := newFixture(t)
	var created sessionJSON
	f.do(http.MethodPost, "/api/v1/sessions", nil, &created)
	base := f.ts.URL + "/api/v1/sessions/" + created.ID

	send := func(method, url, body string) int {
		req, err := http.NewRequest(method, url, strings.NewReader(body))
		if !assert.NoError(t, err) {
			return 0
		}
		resp, err := http.DefaultClient.Do(req)
		if !assert.NoError(t, err) {
			return 0
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return resp.StatusCode
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			body := fmt.Sprintf(`{"cells":[{"x":%d,"y":%d,"value":%d}]}`, 1+i%7, 1+i%5, 1+i%9)
			code := send(http.MethodPut, base+"/cells", body)
			assert.Contains(t, []int{http.StatusOK, http.StatusConflict}, code)
		}(i)
		go func() {
			defer wg.Done()
			assert.Equal(t, http.StatusOK, send(http.MethodGet, base+"/text", ""))
		}()
		go func() {
			defer wg.Done()
			assert.Equal(t, http.StatusOK, send(http.MethodGet, base+"/image.png", ""))
		}()
	}
	wg.Wait()
}

func TestStep_BadCount(t *testing.T) {
	f := newFixture(t)
	var created sessionJSON
	f.do(http.MethodPost, "/api/v1/sessions", nil, &created)

	for _, q := range []string{"0", "-3", "abc", "10001"} {
		var out sessionJSON
		resp := f.do(http.MethodPost, "/api/v1/sessions/"+created.ID+"/step?count="+q, nil, &out)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestClose(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		f.do(http.MethodPost, "/api/v1/sessions", nil, nil)
	}
	assert.Equal(t, 3, f.srv.Len())
	require.NoError(t, f.srv.Close())
	assert.Zero(t, f.srv.Len())
}
