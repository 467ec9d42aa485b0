package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_LevelFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: "nonsense"}, &buf)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	logger = NewWithWriter(Config{Level: "debug"}, &buf)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestRequestLogger_WritesStatusAndPath(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: "info", Format: "json"}, &buf)

	h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/calc", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request", line["message"])
	assert.Equal(t, "/api/calc", line["path"])
	assert.Equal(t, "POST", line["method"])
	assert.EqualValues(t, http.StatusTeapot, line["status"])
}
