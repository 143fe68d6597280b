package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/sticky-board/models"
)

// IDGenerator produces unique identifiers.
type IDGenerator interface {
	Generate() string
}

// BoardService holds the client's view of the board and the session gate.
//
// Local intents (create, delete, move) update the view optimistically where
// that is safe and are forwarded to the relay. Inbound events are applied
// through Apply or the typed Apply* methods. BoardService is not safe for
// concurrent use; it is driven from the UI event loop only.
type BoardService interface {
	// JoinSession asks the relay to join the session with code. A blank code
	// is ignored without emitting anything.
	JoinSession(code string) error

	// CreateSession asks the relay for a new session.
	CreateSession() error

	// CreateNote adds a pending note with content at the origin and emits
	// createNote. Blank content is ignored. If the emit fails the pending note
	// is dropped again.
	CreateNote(content string) error

	// DeleteNote marks the note as pending deletion and emits deleteNote. The
	// note leaves the board when the relay echoes noteDeleted.
	DeleteNote(id string) error

	// MoveNote sets the position of the note with id and emits
	// updateNotePosition. If the emit fails the note goes back to its last
	// confirmed position.
	MoveNote(id string, x, y float64) error

	// Apply decodes payload according to event and applies it.
	Apply(event models.Event, payload json.RawMessage) error

	ApplySessionCreated(code string)
	ApplySessionJoined(notes []models.Note)
	ApplySessionError(message string)
	ApplyNoteCreated(note models.Note)
	ApplyNoteDeleted(id string)
	ApplyNotePositionUpdated(update models.NotePosition)

	// Notes returns a copy of the board in display order.
	Notes() []models.Note
	Note(id string) (models.Note, bool)
	Joined() bool
	SessionCode() string
	SessionsEnabled() bool

	// Alert returns the pending blocking message, if any.
	Alert() (string, bool)
	DismissAlert()
}

// ClientAppInfoService exposes informational data about the relay.
type ClientAppInfoService interface {
	ServerVersion(ctx context.Context) (string, error)
}
