// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/sticky-board/internal/adapter"
	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/MKhiriev/sticky-board/models"
)

type boardService struct {
	emitter adapter.Emitter
	ids     IDGenerator

	sessionsEnabled bool
	joined          bool
	sessionCode     string

	notes []models.Note
	// confirmed holds the last position echoed by the relay per note id.
	confirmed map[string]models.Position

	alert string

	logger *logger.Logger
}

// NewBoardService returns a [BoardService] that forwards intents through
// emitter. With sessionsEnabled false the gate is skipped: the board starts
// joined and payloads carry no session code.
func NewBoardService(emitter adapter.Emitter, ids IDGenerator, sessionsEnabled bool, logger *logger.Logger) BoardService {
	return &boardService{
		emitter:         emitter,
		ids:             ids,
		sessionsEnabled: sessionsEnabled,
		joined:          !sessionsEnabled,
		confirmed:       make(map[string]models.Position),
		logger:          logger,
	}
}

func (b *boardService) JoinSession(code string) error {
	if !b.sessionsEnabled {
		return ErrSessionsDisabled
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}

	b.sessionCode = code
	if err := b.emitter.Emit(models.EventJoinSession, code); err != nil {
		return fmt.Errorf("emit join session: %w", err)
	}

	b.logger.Debug().Str("session", code).Msg("join requested")
	return nil
}

func (b *boardService) CreateSession() error {
	if !b.sessionsEnabled {
		return ErrSessionsDisabled
	}

	if err := b.emitter.Emit(models.EventCreateSession, nil); err != nil {
		return fmt.Errorf("emit create session: %w", err)
	}

	b.logger.Debug().Msg("new session requested")
	return nil
}

func (b *boardService) CreateNote(content string) error {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	if !b.joined {
		return ErrNotJoined
	}

	note := models.Note{
		ID:       b.ids.Generate(),
		Content:  content,
		Position: models.Position{X: 0, Y: 0},
		Status:   models.NotePendingCreate,
	}
	b.notes = append(b.notes, note)

	req := models.CreateNoteRequest{Note: note, SessionCode: b.payloadSessionCode()}
	if err := b.emitter.Emit(models.EventCreateNote, req); err != nil {
		b.remove(note.ID)
		return fmt.Errorf("emit create note: %w", err)
	}

	return nil
}

func (b *boardService) DeleteNote(id string) error {
	if !b.joined {
		return ErrNotJoined
	}

	i := b.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete %s: %w", id, ErrNoteNotFound)
	}
	if b.notes[i].Status == models.NotePendingDelete {
		return nil
	}

	prev := b.notes[i].Status
	b.notes[i].Status = models.NotePendingDelete

	req := models.DeleteNoteRequest{ID: id, SessionCode: b.payloadSessionCode()}
	if err := b.emitter.Emit(models.EventDeleteNote, req); err != nil {
		b.notes[i].Status = prev
		return fmt.Errorf("emit delete note: %w", err)
	}

	return nil
}

func (b *boardService) MoveNote(id string, x, y float64) error {
	if !b.joined {
		return ErrNotJoined
	}

	i := b.indexOf(id)
	if i < 0 {
		return fmt.Errorf("move %s: %w", id, ErrNoteNotFound)
	}

	pos := models.Position{X: x, Y: y}
	if b.notes[i].Position == pos {
		return nil
	}

	prevStatus, prevPos := b.notes[i].Status, b.notes[i].Position
	b.notes[i].Position = pos
	if prevStatus != models.NotePendingDelete {
		b.notes[i].Status = models.NotePendingMove
	}

	req := models.UpdateNotePositionRequest{ID: id, Position: pos, SessionCode: b.payloadSessionCode()}
	if err := b.emitter.Emit(models.EventUpdateNotePosition, req); err != nil {
		if confirmed, ok := b.confirmed[id]; ok {
			b.notes[i].Position = confirmed
			if prevStatus == models.NotePendingMove {
				prevStatus = models.NoteConfirmed
			}
		} else {
			b.notes[i].Position = prevPos
		}
		b.notes[i].Status = prevStatus
		return fmt.Errorf("emit note position: %w", err)
	}

	return nil
}

func (b *boardService) Apply(event models.Event, payload json.RawMessage) error {
	switch event {
	case models.EventConnect:
		b.logger.Info().Msg("connected to server")
	case models.EventConnectError, models.EventDisconnect:
		var reason string
		_ = json.Unmarshal(payload, &reason)
		b.logger.Warn().Str("event", string(event)).Str("reason", reason).Msg("connection state changed")

	case models.EventSessionCreated:
		var code string
		if err := decode(payload, &code); err != nil {
			return fmt.Errorf("%s: %w", event, err)
		}
		b.ApplySessionCreated(code)
	case models.EventSessionJoined:
		var notes []models.Note
		if err := decode(payload, &notes); err != nil {
			return fmt.Errorf("%s: %w", event, err)
		}
		b.ApplySessionJoined(notes)
	case models.EventSessionError:
		var message string
		if err := decode(payload, &message); err != nil {
			return fmt.Errorf("%s: %w", event, err)
		}
		b.ApplySessionError(message)
	case models.EventNoteCreated:
		var note models.Note
		if err := decode(payload, &note); err != nil {
			return fmt.Errorf("%s: %w", event, err)
		}
		b.ApplyNoteCreated(note)
	case models.EventNoteDeleted:
		id, err := decodeNoteID(payload)
		if err != nil {
			return fmt.Errorf("%s: %w", event, err)
		}
		b.ApplyNoteDeleted(id)
	case models.EventNotePositionUpdated:
		var update models.NotePosition
		if err := decode(payload, &update); err != nil {
			return fmt.Errorf("%s: %w", event, err)
		}
		b.ApplyNotePositionUpdated(update)

	default:
		return fmt.Errorf("%s: %w", event, ErrUnknownEvent)
	}

	return nil
}

func (b *boardService) ApplySessionCreated(code string) {
	b.sessionCode = code
	b.joined = true
	b.notes = nil
	clear(b.confirmed)

	b.logger.Info().Str("session", code).Msg("session created")
}

func (b *boardService) ApplySessionJoined(notes []models.Note) {
	b.notes = make([]models.Note, len(notes))
	clear(b.confirmed)
	for i, n := range notes {
		n.Status = models.NoteConfirmed
		b.notes[i] = n
		b.confirmed[n.ID] = n.Position
	}
	b.joined = true

	b.logger.Info().Str("session", b.sessionCode).Int("notes", len(notes)).Msg("session joined")
}

func (b *boardService) ApplySessionError(message string) {
	b.alert = message
	if b.sessionsEnabled {
		b.joined = false
	}

	b.logger.Warn().Str("session", b.sessionCode).Str("message", message).Msg("session rejected")
}

func (b *boardService) ApplyNoteCreated(note models.Note) {
	b.confirmed[note.ID] = note.Position

	i := b.indexOf(note.ID)
	if i < 0 {
		note.Status = models.NoteConfirmed
		b.notes = append(b.notes, note)
		return
	}

	// our own echo, or a duplicate
	if b.notes[i].Status == models.NotePendingCreate {
		b.notes[i].Content = note.Content
		b.notes[i].Position = note.Position
		b.notes[i].Status = models.NoteConfirmed
	}
}

func (b *boardService) ApplyNoteDeleted(id string) {
	b.remove(id)
}

func (b *boardService) ApplyNotePositionUpdated(update models.NotePosition) {
	i := b.indexOf(update.ID)
	if i < 0 {
		b.logger.Debug().Str("id", update.ID).Msg("position update for unknown note")
		return
	}
	b.confirmed[update.ID] = update.Position

	n := &b.notes[i]
	switch n.Status {
	case models.NotePendingMove:
		// a newer local drag is still in flight unless this is its echo
		if n.Position == update.Position {
			n.Status = models.NoteConfirmed
		}
	case models.NotePendingDelete:
		n.Position = update.Position
	default:
		n.Position = update.Position
		n.Status = models.NoteConfirmed
	}
}

func (b *boardService) Notes() []models.Note {
	return slices.Clone(b.notes)
}

func (b *boardService) Note(id string) (models.Note, bool) {
	i := b.indexOf(id)
	if i < 0 {
		return models.Note{}, false
	}
	return b.notes[i], true
}

func (b *boardService) Joined() bool {
	return b.joined
}

func (b *boardService) SessionCode() string {
	return b.sessionCode
}

func (b *boardService) SessionsEnabled() bool {
	return b.sessionsEnabled
}

func (b *boardService) Alert() (string, bool) {
	return b.alert, b.alert != ""
}

func (b *boardService) DismissAlert() {
	b.alert = ""
}

func (b *boardService) payloadSessionCode() string {
	if !b.sessionsEnabled {
		return ""
	}
	return b.sessionCode
}

func (b *boardService) indexOf(id string) int {
	return slices.IndexFunc(b.notes, func(n models.Note) bool { return n.ID == id })
}

func (b *boardService) remove(id string) {
	b.notes = slices.DeleteFunc(b.notes, func(n models.Note) bool { return n.ID == id })
	delete(b.confirmed, id)
}

func decode(payload json.RawMessage, v any) error {
	if len(payload) == 0 {
		return ErrInvalidPayload
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

func decodeNoteID(payload json.RawMessage) (string, error) {
	if len(payload) == 0 {
		return "", ErrInvalidPayload
	}
	id, err := models.DecodeNoteID(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return id, nil
}
