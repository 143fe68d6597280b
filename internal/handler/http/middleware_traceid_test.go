package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/sticky-board/internal/config"
	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return NewHandler(nil, config.Server{}, logger.Nop())
}

func executeWithTraceID(h *Handler, header string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if header != "" {
		req.Header.Set(traceIDHeader, header)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	rr, req := executeWithTraceID(newTestHandler(), "my-custom-trace-id")

	require.NotNil(t, req)
	assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	rr, _ := executeWithTraceID(newTestHandler(), "")

	_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

func TestWithTraceID_LoggerInContextCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler()
	h.logger = &logger.Logger{Logger: zerolog.New(&buf)}

	_, req := executeWithTraceID(h, "abc")
	logger.FromRequest(req).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
}
