// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/MKhiriev/sticky-board/models"
)

// session is a single board. notes keeps insertion order so every member
// renders the same stacking.
type session struct {
	notes     []models.Note
	updatedAt time.Time
}

func (s *session) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n models.Note) bool { return n.ID == id })
}

// memorySessionStore is the in-process implementation of [SessionStore].
// Nothing survives a restart.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session

	now    func() time.Time
	logger *logger.Logger
}

// NewMemorySessionStore returns an empty [SessionStore] backed by a map.
func NewMemorySessionStore(logger *logger.Logger) SessionStore {
	return newMemorySessionStore(time.Now, logger)
}

func newMemorySessionStore(now func() time.Time, logger *logger.Logger) *memorySessionStore {
	return &memorySessionStore{
		sessions: make(map[string]*session),
		now:      now,
		logger:   logger,
	}
}

func (m *memorySessionStore) Create(ctx context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[code]; ok {
		return fmt.Errorf("create session %q: %w", code, ErrSessionExists)
	}
	m.sessions[code] = &session{updatedAt: m.now()}

	m.logger.Debug().Str("session", code).Msg("session created")
	return nil
}

func (m *memorySessionStore) Exists(ctx context.Context, code string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.sessions[code]
	return ok
}

func (m *memorySessionStore) Notes(ctx context.Context, code string) ([]models.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[code]
	if !ok {
		return nil, fmt.Errorf("notes of %q: %w", code, ErrSessionNotFound)
	}

	notes := make([]models.Note, len(s.notes))
	copy(notes, s.notes)
	return notes, nil
}

func (m *memorySessionStore) AddNote(ctx context.Context, code string, note models.Note) error {
	if note.ID == "" {
		return ErrEmptyNoteID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[code]
	if !ok {
		return fmt.Errorf("add note to %q: %w", code, ErrSessionNotFound)
	}
	if s.indexOf(note.ID) >= 0 {
		return fmt.Errorf("add note %s: %w", note.ID, ErrNoteExists)
	}

	note.Status = models.NoteConfirmed
	s.notes = append(s.notes, note)
	s.updatedAt = m.now()
	return nil
}

func (m *memorySessionStore) DeleteNote(ctx context.Context, code, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[code]
	if !ok {
		return fmt.Errorf("delete note from %q: %w", code, ErrSessionNotFound)
	}
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete note %s: %w", id, ErrNoteNotFound)
	}

	s.notes = slices.Delete(s.notes, i, i+1)
	s.updatedAt = m.now()
	return nil
}

func (m *memorySessionStore) MoveNote(ctx context.Context, code, id string, position models.Position) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[code]
	if !ok {
		return fmt.Errorf("move note in %q: %w", code, ErrSessionNotFound)
	}
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("move note %s: %w", id, ErrNoteNotFound)
	}

	s.notes[i].Position = position
	s.updatedAt = m.now()
	return nil
}

func (m *memorySessionStore) Touch(ctx context.Context, code string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[code]
	if !ok {
		return fmt.Errorf("touch %q: %w", code, ErrSessionNotFound)
	}
	if at.After(s.updatedAt) {
		s.updatedAt = at
	}
	return nil
}

func (m *memorySessionStore) Idle(ctx context.Context, before time.Time) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var codes []string
	for code, s := range m.sessions {
		if s.updatedAt.Before(before) {
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)
	return codes
}

func (m *memorySessionStore) Delete(ctx context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[code]; !ok {
		return fmt.Errorf("delete session %q: %w", code, ErrSessionNotFound)
	}
	delete(m.sessions, code)

	m.logger.Debug().Str("session", code).Msg("session deleted")
	return nil
}
