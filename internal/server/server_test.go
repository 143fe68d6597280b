package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/sticky-board/internal/config"
	"github.com/MKhiriev/sticky-board/internal/handler"
	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/MKhiriev/sticky-board/internal/service"
	"github.com/MKhiriev/sticky-board/internal/store"
	"github.com/MKhiriev/sticky-board/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, nil, config.Server{HTTPAddress: ":5000"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	log := logger.Nop()
	addr := freeAddress(t)
	cfg := config.Server{HTTPAddress: addr}

	storages := store.NewStorages(log)
	services, err := service.NewServices(storages, config.App{Version: "9.9.9"}, log)
	require.NoError(t, err)
	handlers, err := handler.NewHandlers(services, cfg, log)
	require.NoError(t, err)
	w := workers.NewWorkers(services.SessionService, config.Workers{}, log)

	srv, err := NewServer(handlers, w, cfg, log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/version/", addr))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
