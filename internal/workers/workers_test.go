// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/sticky-board/internal/config"
	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingWorker runs until ctx is done and counts how often it was started.
type blockingWorker struct {
	runCount atomic.Int32
}

func (m *blockingWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	<-ctx.Done()
	return nil
}

type failingWorker struct{ err error }

func (f failingWorker) Run(context.Context) error { return f.err }

type countingReaper struct {
	mu    sync.Mutex
	calls int
	ttls  []time.Duration
}

func (c *countingReaper) ReapIdle(_ context.Context, ttl time.Duration) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.ttls = append(c.ttls, ttl)
	return []string{"OLD000"}
}

func (c *countingReaper) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestWorkers_Run_AllWorkersAreStarted(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := &Workers{workers: []Worker{w1, w2, w3}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_FirstErrorStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocker := &blockingWorker{}
	ws := &Workers{workers: []Worker{blocker, failingWorker{err: boom}}}

	err := ws.Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSessionReaper_ReapsOnEveryTick(t *testing.T) {
	reaper := &countingReaper{}
	w := NewSessionReaper(reaper, config.Workers{ReapInterval: 5 * time.Millisecond, SessionIdleTTL: time.Hour}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return reaper.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	reaper.mu.Lock()
	defer reaper.mu.Unlock()
	assert.Equal(t, time.Hour, reaper.ttls[0])
}

func TestNewSessionReaper_Defaults(t *testing.T) {
	w := NewSessionReaper(&countingReaper{}, config.Workers{}, logger.Nop()).(*sessionReaper)

	assert.Equal(t, defaultReapInterval, w.interval)
	assert.Equal(t, defaultSessionIdleTTL, w.ttl)
}

func TestNewWorkers(t *testing.T) {
	ws := NewWorkers(&countingReaper{}, config.Workers{}, logger.Nop())
	require.Len(t, ws.workers, 1)
}
