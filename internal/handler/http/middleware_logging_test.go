package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging_WritesAccessLine(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		status int
		body   string
		want   []string
	}{
		{
			name: "GET 200", method: http.MethodGet, path: "/api/version/", status: http.StatusOK, body: "1.0",
			want: []string{`"method":"GET"`, `"uri":"/api/version/"`, `"status":200`, `"size":3`, `"duration":`},
		},
		{
			name: "GET 404", method: http.MethodGet, path: "/nope", status: http.StatusNotFound,
			want: []string{`"status":404`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(l.WithContext(req.Context()))

			rr := httptest.NewRecorder()
			newTestHandler().withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusTeapot)
	_, _ = w.Write([]byte("ok"))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, 2, w.size)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, _ = w.Write([]byte("hello"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 5, w.size)
}

func TestResponseWriter_HijackUnsupported(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _, err := w.Hijack()
	assert.Error(t, err)
	assert.False(t, w.hijacked)
}
