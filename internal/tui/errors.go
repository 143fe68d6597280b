// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/sticky-board/internal/adapter"
)

var (
	ErrNoBoardService = errors.New("tui: board service is required")
	ErrNoEventSource  = errors.New("tui: event source is required")
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrNotConnected), errors.Is(err, adapter.ErrTransportClosed):
		return "Not connected to the server"
	case errors.Is(err, adapter.ErrSendQueueFull):
		return "Server is not keeping up, try again"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}
