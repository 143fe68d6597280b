// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/sticky-board/internal/adapter"
	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/MKhiriev/sticky-board/internal/service"
	"github.com/MKhiriev/sticky-board/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal front end of the board client.
type TUI struct {
	services  *service.ClientServices
	events    adapter.EventSource
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a [TUI] that renders services and listens to relay events on
// events.
func New(services *service.ClientServices, events adapter.EventSource, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.BoardService == nil {
		return nil, ErrNoBoardService
	}
	if events == nil {
		return nil, ErrNoEventSource
	}

	return &TUI{
		services:  services,
		events:    events,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled. connect is started
// from the first update cycle, after every inbound event is subscribed.
func (t *TUI) Run(ctx context.Context, connect func(context.Context) error) error {
	bridge := newEventBridge(t.events, inboundEvents...)
	defer bridge.close()

	model := newBoardModel(ctx, t.services, bridge, t.buildInfo, t.logger)
	model.connect = connect
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
