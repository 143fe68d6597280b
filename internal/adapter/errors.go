package adapter

import "errors"

var (
	// ErrNotConnected is returned by Emit before a successful Connect.
	ErrNotConnected = errors.New("transport is not connected")
	// ErrTransportClosed is returned by Emit and Connect after Close.
	ErrTransportClosed = errors.New("transport is closed")
	// ErrSendQueueFull is returned by Emit when outbound frames pile up faster
	// than the connection drains them.
	ErrSendQueueFull = errors.New("send queue is full")
	// ErrInvalidAddress is returned for a relay address that cannot be parsed.
	ErrInvalidAddress = errors.New("invalid relay address")

	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
