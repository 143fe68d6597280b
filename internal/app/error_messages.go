// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// sticky-board relay and client.
//
// All Msg* constants are human-readable message strings that the relay sends
// as the payload of a sessionError event or writes into HTTP response bodies.
// The client shows them to the user verbatim.
package app

const (
	// MsgSessionNotFound is sent when a peer joins, or writes to, a session
	// code the relay does not know.
	MsgSessionNotFound = "Session not found"

	// MsgSessionCodeRequired is sent when joinSession arrives without a code.
	MsgSessionCodeRequired = "Session code is required"

	// MsgSessionCreateFailed is sent when the relay could not allocate a free
	// session code.
	MsgSessionCreateFailed = "Could not create a new session, try again"

	// MsgNotSessionMember is sent when a peer writes to a session it has not
	// joined.
	MsgNotSessionMember = "Join the session before editing its notes"

	// MsgInvalidDataProvided is sent when an event payload cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
