// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Position is a point on the board canvas. The terminal client treats one unit
// as one character cell.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NoteStatus tracks whether the server has acknowledged the latest local change
// of a note. It never leaves the client and is not part of the wire format.
type NoteStatus int

const (
	// NoteConfirmed means the local copy matches the last server echo.
	NoteConfirmed NoteStatus = iota
	// NotePendingCreate marks a note created locally and not yet echoed back.
	NotePendingCreate
	// NotePendingMove marks a note dragged locally whose new position has not
	// been echoed back.
	NotePendingMove
	// NotePendingDelete marks a note whose deletion was requested but not yet
	// echoed back.
	NotePendingDelete
)

// String returns a short human-readable name of the status.
func (s NoteStatus) String() string {
	switch s {
	case NoteConfirmed:
		return "confirmed"
	case NotePendingCreate:
		return "pending-create"
	case NotePendingMove:
		return "pending-move"
	case NotePendingDelete:
		return "pending-delete"
	default:
		return "unknown"
	}
}

// Note is a single sticky note on the board.
type Note struct {
	// ID is generated by the creating client and is unique within a session.
	ID string `json:"id"`

	// Content is free-form note text.
	Content string `json:"content"`

	// Position is where the note is placed on the canvas.
	Position Position `json:"position"`

	// Status is local bookkeeping of the client; never serialised.
	Status NoteStatus `json:"-"`
}
