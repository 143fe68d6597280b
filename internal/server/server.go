package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/sticky-board/internal/config"
	"github.com/MKhiriev/sticky-board/internal/handler"
	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/MKhiriev/sticky-board/internal/workers"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, w *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    w,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves HTTP and runs the workers until ctx is done or one of them
// fails, then shuts the HTTP server down.
func (s *server) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
		return s.httpServer.RunServer(ctx)
	})

	if s.workers != nil {
		g.Go(func() error {
			return s.workers.Run(ctx)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		s.Shutdown()
		return nil
	})

	err := g.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}
