package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/internal/utils"
)

func newTraceHandler(buf *bytes.Buffer) *Handler {
	return &Handler{
		logger:   &logger.Logger{Logger: newTestLogger(buf)},
		traceIDs: utils.NewUUIDGenerator(),
	}
}

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		logger.FromRequest(r).Info().Msg("inside")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_ReusesHeader(t *testing.T) {
	var buf bytes.Buffer
	rr, captured := executeWithTraceID(newTraceHandler(&buf), "my-custom-trace-id")

	require.NotNil(t, captured)
	assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"my-custom-trace-id"`)
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	var buf bytes.Buffer
	rr, _ := executeWithTraceID(newTraceHandler(&buf), "")

	traceID := rr.Header().Get(traceIDHeader)
	parsed, err := uuid.Parse(traceID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Contains(t, buf.String(), traceID)
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	var buf bytes.Buffer
	h := newTraceHandler(&buf)

	rr1, _ := executeWithTraceID(h, "")
	rr2, _ := executeWithTraceID(h, "")

	assert.NotEqual(t, rr1.Header().Get(traceIDHeader), rr2.Header().Get(traceIDHeader))
}
