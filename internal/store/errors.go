package store

import "errors"

// Sentinel errors returned by [SessionStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned when an operation targets a session code
	// that was never created or has already been reaped.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExists is returned by Create when the code is already in use.
	ErrSessionExists = errors.New("session already exists")

	// ErrNoteNotFound is returned when no note with the given id exists in
	// the session.
	ErrNoteNotFound = errors.New("note not found")

	// ErrNoteExists is returned when a note id is added to a session twice.
	ErrNoteExists = errors.New("note already exists")

	ErrEmptyNoteID = errors.New("note id is empty")
)
