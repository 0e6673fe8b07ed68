package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"Warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}

func TestNewCore_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := zap.New(newCore(&Config{Level: "warn", Format: "json"}, &buf))

	log.Info("dropped")
	log.Warn("kept", zap.Int("slot", 2))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "warn", entry["level"])
	assert.EqualValues(t, 2, entry["slot"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewCore_Console(t *testing.T) {
	var buf bytes.Buffer
	log := zap.New(newCore(&Config{Level: "debug", Format: "console"}, &buf))
	log.Debug("hello")
	assert.Contains(t, buf.String(), "DEBUG\thello")
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathrace.log")
	log, err := New(&Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)
	log.Info("to file")
	require.NoError(t, log.Sync())
	assert.FileExists(t, path)

	_, err = New(&Config{Output: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)

	log, err = New(nil)
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(Middleware(zap.New(core)))
	r.Get("/ok", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("fine")) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	done := logs.FilterMessage("Request completed").All()
	require.Len(t, done, 2)
	ok := done[0].ContextMap()
	assert.EqualValues(t, 200, ok["status"])
	assert.EqualValues(t, 4, ok["bytes"])
	assert.Equal(t, "/ok", ok["path"])
	assert.NotEmpty(t, ok["request_id"])

	missing := done[1].ContextMap()
	assert.EqualValues(t, 404, missing["status"])
	assert.Equal(t, "Not Found", missing["error"])
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := Recovery(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	entries := logs.FilterMessage("Recovered from panic").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "kaboom", entries[0].ContextMap()["error"])
	assert.Contains(t, entries[0].ContextMap()["stack"], "runtime/debug")
}
