// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the board client and
// the relay.
//
// [BoardTransport] carries the named-event protocol over a single websocket
// connection; [InfoAdapter] talks plain HTTP to the relay's informational
// endpoints. Transport failures are reported through the sentinel errors in
// errors.go so callers can match them with [errors.Is].
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/sticky-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Handler receives the raw JSON payload of an inbound event. Handlers run on
// the transport's reader goroutine and must not block for long.
type Handler func(payload json.RawMessage)

// Emitter sends named events to the relay.
type Emitter interface {
	// Emit queues event with payload for delivery. It does not wait for the
	// write to happen. A nil payload sends the event without data.
	Emit(event models.Event, payload any) error
}

// EventSource delivers named inbound events.
type EventSource interface {
	// On registers handler for event and returns a function that removes the
	// registration. Calling the returned function more than once is a no-op.
	On(event models.Event, handler Handler) (unsubscribe func())
}

// BoardTransport is one long-lived connection to the relay.
type BoardTransport interface {
	Emitter
	EventSource

	// Connect dials the relay. Failure is also published to subscribers of
	// [models.EventConnectError]; success to [models.EventConnect].
	Connect(ctx context.Context) error

	// Close tears the connection down and waits for the transport goroutines
	// to exit. Emit after Close returns [ErrTransportClosed].
	Close() error
}

// InfoAdapter fetches informational data from the relay over HTTP.
type InfoAdapter interface {
	// ServerVersion returns the relay's version string.
	ServerVersion(ctx context.Context) (string, error)
}
