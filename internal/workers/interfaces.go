// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. Returning nil after
// cancellation is the normal way to stop.
type Worker interface {
	Run(ctx context.Context) error
}

// SessionReaper is the part of the session service the reaper drives.
type SessionReaper interface {
	ReapIdle(ctx context.Context, ttl time.Duration) []string
}
