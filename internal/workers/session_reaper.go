// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/sticky-board/internal/config"
	"github.com/MKhiriev/sticky-board/internal/logger"
)

const (
	defaultReapInterval   = time.Minute
	defaultSessionIdleTTL = 30 * time.Minute
)

// sessionReaper periodically drops sessions nobody is in.
type sessionReaper struct {
	sessions SessionReaper
	interval time.Duration
	ttl      time.Duration

	logger *logger.Logger
}

func NewSessionReaper(sessions SessionReaper, cfg config.Workers, logger *logger.Logger) Worker {
	r := &sessionReaper{
		sessions: sessions,
		interval: cfg.ReapInterval,
		ttl:      cfg.SessionIdleTTL,
		logger:   logger,
	}
	if r.interval <= 0 {
		r.interval = defaultReapInterval
	}
	if r.ttl <= 0 {
		r.ttl = defaultSessionIdleTTL
	}
	return r
}

func (r *sessionReaper) Run(ctx context.Context) error {
	r.logger.Info().Dur("interval", r.interval).Dur("ttl", r.ttl).Msg("session reaper started")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("session reaper stopped")
			return nil
		case <-ticker.C:
			if reaped := r.sessions.ReapIdle(ctx, r.ttl); len(reaped) > 0 {
				r.logger.Info().Strs("sessions", reaped).Msg("reaped idle sessions")
			}
		}
	}
}
