// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Event is the name of a message exchanged over the board connection.
type Event string

// Events emitted by the client.
const (
	EventCreateSession      Event = "createSession"
	EventJoinSession        Event = "joinSession"
	EventCreateNote         Event = "createNote"
	EventDeleteNote         Event = "deleteNote"
	EventUpdateNotePosition Event = "updateNotePosition"
)

// Events emitted by the server.
const (
	EventSessionCreated      Event = "sessionCreated"
	EventSessionJoined       Event = "sessionJoined"
	EventSessionError        Event = "sessionError"
	EventNoteCreated         Event = "noteCreated"
	EventNoteDeleted         Event = "noteDeleted"
	EventNotePositionUpdated Event = "notePositionUpdated"
)

// Events raised locally by the transport about the connection itself.
const (
	EventConnect      Event = "connect"
	EventConnectError Event = "connect_error"
	EventDisconnect   Event = "disconnect"
)

// Envelope is the frame carried by every websocket message.
type Envelope struct {
	Event Event           `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// NewEnvelope marshals payload into an [Envelope] for event. A nil payload
// produces an envelope without data.
func NewEnvelope(event Event, payload any) (Envelope, error) {
	env := Envelope{Event: event}
	if payload == nil {
		return env, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	env.Data = data
	return env, nil
}

// CreateNoteRequest is the payload of [EventCreateNote].
type CreateNoteRequest struct {
	Note        Note   `json:"note"`
	SessionCode string `json:"sessionCode,omitempty"`
}

// DeleteNoteRequest is the payload of [EventDeleteNote].
type DeleteNoteRequest struct {
	ID          string `json:"id"`
	SessionCode string `json:"sessionCode,omitempty"`
}

// UpdateNotePositionRequest is the payload of [EventUpdateNotePosition].
type UpdateNotePositionRequest struct {
	ID          string   `json:"id"`
	Position    Position `json:"position"`
	SessionCode string   `json:"sessionCode,omitempty"`
}

// NotePosition is the payload of [EventNotePositionUpdated].
type NotePosition struct {
	ID       string   `json:"id"`
	Position Position `json:"position"`
}
