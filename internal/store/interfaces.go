package store

import (
	"context"
	"time"

	"github.com/MKhiriev/sticky-board/models"
)

// SessionStore keeps the notes of every live board session.
type SessionStore interface {
	// Create registers an empty session under code. Returns
	// ErrSessionExists if the code is taken.
	Create(ctx context.Context, code string) error

	// Exists reports whether a session with code is registered.
	Exists(ctx context.Context, code string) bool

	// Notes returns a copy of the session's notes in insertion order.
	Notes(ctx context.Context, code string) ([]models.Note, error)

	// AddNote appends note to the session. Returns ErrNoteExists when a note
	// with the same id is already on the board.
	AddNote(ctx context.Context, code string, note models.Note) error

	// DeleteNote removes the note with id. Returns ErrNoteNotFound if absent.
	DeleteNote(ctx context.Context, code, id string) error

	// MoveNote sets the position of the note with id, leaving its content and
	// id untouched.
	MoveNote(ctx context.Context, code, id string, position models.Position) error

	// Touch marks the session as active at the given time. It never moves the
	// activity time backwards. Returns ErrSessionNotFound if absent.
	Touch(ctx context.Context, code string, at time.Time) error

	// Idle lists sessions whose last activity happened before the given time.
	Idle(ctx context.Context, before time.Time) []string

	// Delete drops the session and all its notes.
	Delete(ctx context.Context, code string) error
}
