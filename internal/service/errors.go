package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNotJoined is returned by note operations attempted before the client
	// joined a session.
	ErrNotJoined = errors.New("not joined to a session")

	// ErrSessionsDisabled is returned by gate operations when the client runs
	// with sessions turned off.
	ErrSessionsDisabled = errors.New("sessions are disabled")

	ErrNoteNotFound = errors.New("note not found")

	ErrInvalidPayload = errors.New("invalid event payload")
	ErrUnknownPeer    = errors.New("unknown peer")
	ErrUnknownEvent   = errors.New("unknown event")

	ErrServerVersionUnavailable = errors.New("server version is unavailable")
)

var (
	ErrNoFreeSessionCode = errors.New("no free session code")
	// ErrNotSessionMember is returned for note events aimed at a session the
	// sending peer has not joined.
	ErrNotSessionMember = errors.New("peer is not a member of the session")
)
