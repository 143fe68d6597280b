package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/sticky-board/internal/config"
	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/MKhiriev/sticky-board/internal/service"
	"github.com/MKhiriev/sticky-board/internal/utils"
	"github.com/gorilla/websocket"
)

const (
	defaultWriteTimeout = 10 * time.Second
	defaultPingInterval = 30 * time.Second
)

type Handler struct {
	services *service.Services

	upgrader     websocket.Upgrader
	ids          *utils.UUIDGenerator
	writeTimeout time.Duration
	pingInterval time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(cfg.AllowedOrigins),
		},
		ids:          utils.NewUUIDGenerator(),
		writeTimeout: cfg.WriteTimeout,
		pingInterval: cfg.PingInterval,
		logger:       logger,
	}
	if h.writeTimeout <= 0 {
		h.writeTimeout = defaultWriteTimeout
	}
	if h.pingInterval <= 0 {
		h.pingInterval = defaultPingInterval
	}

	logger.Info().Msg("http handler created")
	return h
}

// checkOrigin builds the websocket origin policy. With no allowed origins it
// falls back to gorilla's same-origin check, which also admits clients that
// send no Origin header at all.
func checkOrigin(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return nil
	}

	origins := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		origin = strings.ToLower(strings.TrimRight(strings.TrimSpace(origin), "/"))
		if origin == "*" {
			return func(*http.Request) bool { return true }
		}
		if origin != "" {
			origins[origin] = struct{}{}
		}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := origins[strings.ToLower(origin)]
		return ok
	}
}
