package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/sticky-board/internal/logger"
)

var (
	ErrNilTransport = errors.New("client: transport is required")
	ErrNilUI        = errors.New("client: ui is required")
)

type App struct {
	transport Transport
	ui        UI
	logger    *logger.Logger
}

func NewApp(transport Transport, ui UI, logger *logger.Logger) (*App, error) {
	if transport == nil {
		return nil, ErrNilTransport
	}
	if ui == nil {
		return nil, ErrNilUI
	}

	return &App{transport: transport, ui: ui, logger: logger}, nil
}

// Run hands the terminal to the UI, which connects to the relay after it
// has subscribed to transport events. A failed connect is not fatal: the
// board opens anyway and every emit reports that the client is offline.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.transport.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("close transport")
		}
	}()

	if err := a.ui.Run(ctx, a.connect); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

func (a *App) connect(ctx context.Context) error {
	if err := a.transport.Connect(ctx); err != nil {
		a.logger.Error().Err(err).Msg("connect to server")
		return err
	}
	return nil
}
