// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Transport is the part of the relay connection the app owns.
type Transport interface {
	Connect(ctx context.Context) error
	Close() error
}

// UI is the interactive front end.
type UI interface {
	// Run blocks until the user quits or ctx is cancelled. The UI calls
	// connect once it listens to transport events, so it sees the outcome of
	// the first connection attempt.
	Run(ctx context.Context, connect func(context.Context) error) error
}
