package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/sticky-board/internal/logger"
)

// withLogging writes one access line per request. For /ws the line is
// written when the websocket session ends.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Bool("hijacked", lw.hijacked).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
