// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrPeerQueueFull is returned by a peer's Send when the peer does not
	// drain its outbound queue fast enough. The event is dropped for that
	// peer only.
	ErrPeerQueueFull = errors.New("peer send queue is full")

	// ErrPeerClosed is returned by Send after the peer's connection ended.
	ErrPeerClosed = errors.New("peer connection is closed")
)
