// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/sticky-board/internal/app"
	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/MKhiriev/sticky-board/internal/store"
	"github.com/MKhiriev/sticky-board/internal/validators"
	"github.com/MKhiriev/sticky-board/models"
)

const maxCodeAttempts = 8

// sessionService is the default [SessionService]. A single mutex covers
// membership and store writes together, so every member of a session sees
// echoes in the same order.
type sessionService struct {
	sessions  store.SessionStore
	codes     SessionCodeGenerator
	validator validators.Validator

	mu         sync.Mutex
	peers      map[string]Peer
	membership map[string]string // peer id -> session code

	now    func() time.Time
	logger *logger.Logger
}

func NewSessionService(sessions store.SessionStore, codes SessionCodeGenerator, validator validators.Validator, logger *logger.Logger) (SessionService, error) {
	err := sessions.Create(context.Background(), DefaultSessionCode)
	if err != nil && !errors.Is(err, store.ErrSessionExists) {
		return nil, fmt.Errorf("create default board: %w", err)
	}

	return &sessionService{
		sessions:   sessions,
		codes:      codes,
		validator:  validator,
		peers:      make(map[string]Peer),
		membership: make(map[string]string),
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *sessionService) Connect(ctx context.Context, peer Peer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.peers[peer.ID()] = peer
	s.membership[peer.ID()] = DefaultSessionCode

	s.logger.Info().Str("peer", peer.ID()).Int("peers", len(s.peers)).Msg("peer connected")
}

func (s *sessionService) Disconnect(ctx context.Context, peerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if code, ok := s.membership[peerID]; ok {
		s.touch(ctx, code)
	}
	delete(s.peers, peerID)
	delete(s.membership, peerID)

	s.logger.Info().Str("peer", peerID).Int("peers", len(s.peers)).Msg("peer disconnected")
}

func (s *sessionService) Handle(ctx context.Context, peerID string, env models.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	peer, ok := s.peers[peerID]
	if !ok {
		return fmt.Errorf("%s from %s: %w", env.Event, peerID, ErrUnknownPeer)
	}

	switch env.Event {
	case models.EventCreateSession:
		return s.createSession(ctx, peer)
	case models.EventJoinSession:
		return s.joinSession(ctx, peer, env.Data)
	case models.EventCreateNote:
		return s.createNote(ctx, peer, env.Data)
	case models.EventDeleteNote:
		return s.deleteNote(ctx, peer, env.Data)
	case models.EventUpdateNotePosition:
		return s.moveNote(ctx, peer, env.Data)
	}

	return fmt.Errorf("%s: %w", env.Event, ErrUnknownEvent)
}

func (s *sessionService) createSession(ctx context.Context, peer Peer) error {
	var code string
	for range maxCodeAttempts {
		candidate := s.codes.SessionCode()
		err := s.sessions.Create(ctx, candidate)
		if err == nil {
			code = candidate
			break
		}
		if !errors.Is(err, store.ErrSessionExists) {
			s.reject(peer, app.MsgSessionCreateFailed)
			return fmt.Errorf("create session: %w", err)
		}
	}
	if code == "" {
		s.reject(peer, app.MsgSessionCreateFailed)
		return ErrNoFreeSessionCode
	}

	s.moveMember(ctx, peer.ID(), code)
	s.send(peer, models.EventSessionCreated, code)

	s.logger.Info().Str("peer", peer.ID()).Str("session", code).Msg("session created")
	return nil
}

func (s *sessionService) joinSession(ctx context.Context, peer Peer, data json.RawMessage) error {
	var code string
	if err := decode(data, &code); err != nil {
		s.reject(peer, app.MsgInvalidDataProvided)
		return fmt.Errorf("join session: %w", err)
	}

	code = strings.TrimSpace(code)
	if code == "" {
		s.reject(peer, app.MsgSessionCodeRequired)
		return nil
	}

	notes, err := s.sessions.Notes(ctx, code)
	if errors.Is(err, store.ErrSessionNotFound) {
		s.reject(peer, app.MsgSessionNotFound)
		return nil
	}
	if err != nil {
		return fmt.Errorf("join session %s: %w", code, err)
	}

	s.moveMember(ctx, peer.ID(), code)
	s.send(peer, models.EventSessionJoined, notes)

	s.logger.Info().Str("peer", peer.ID()).Str("session", code).Int("notes", len(notes)).Msg("session joined")
	return nil
}

func (s *sessionService) createNote(ctx context.Context, peer Peer, data json.RawMessage) error {
	var req models.CreateNoteRequest
	if err := decode(data, &req); err != nil {
		s.reject(peer, app.MsgInvalidDataProvided)
		return fmt.Errorf("create note: %w", err)
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		s.reject(peer, app.MsgInvalidDataProvided)
		return fmt.Errorf("create note: %w: %w", ErrInvalidPayload, err)
	}
	if ok, err := s.checkMember(ctx, peer, req.SessionCode); !ok {
		return err
	}

	err := s.sessions.AddNote(ctx, req.SessionCode, req.Note)
	if errors.Is(err, store.ErrSessionNotFound) {
		s.reject(peer, app.MsgSessionNotFound)
		return nil
	}
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	req.Note.Status = models.NoteConfirmed
	s.broadcast(req.SessionCode, models.EventNoteCreated, req.Note)
	return nil
}

// deleteNote echoes noteDeleted even for an id the board no longer has, so a
// client whose delete raced another one still drops its pending copy.
func (s *sessionService) deleteNote(ctx context.Context, peer Peer, data json.RawMessage) error {
	var req models.DeleteNoteRequest
	if err := decode(data, &req); err != nil {
		s.reject(peer, app.MsgInvalidDataProvided)
		return fmt.Errorf("delete note: %w", err)
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		s.reject(peer, app.MsgInvalidDataProvided)
		return fmt.Errorf("delete note: %w: %w", ErrInvalidPayload, err)
	}
	if ok, err := s.checkMember(ctx, peer, req.SessionCode); !ok {
		return err
	}

	err := s.sessions.DeleteNote(ctx, req.SessionCode, req.ID)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		s.reject(peer, app.MsgSessionNotFound)
		return nil
	case err != nil && !errors.Is(err, store.ErrNoteNotFound):
		return fmt.Errorf("delete note: %w", err)
	}

	s.broadcast(req.SessionCode, models.EventNoteDeleted, req.ID)
	return nil
}

func (s *sessionService) moveNote(ctx context.Context, peer Peer, data json.RawMessage) error {
	var req models.UpdateNotePositionRequest
	if err := decode(data, &req); err != nil {
		s.reject(peer, app.MsgInvalidDataProvided)
		return fmt.Errorf("move note: %w", err)
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		s.reject(peer, app.MsgInvalidDataProvided)
		return fmt.Errorf("move note: %w: %w", ErrInvalidPayload, err)
	}
	if ok, err := s.checkMember(ctx, peer, req.SessionCode); !ok {
		return err
	}

	err := s.sessions.MoveNote(ctx, req.SessionCode, req.ID, req.Position)
	if errors.Is(err, store.ErrSessionNotFound) {
		s.reject(peer, app.MsgSessionNotFound)
		return nil
	}
	if err != nil {
		return fmt.Errorf("move note: %w", err)
	}

	s.broadcast(req.SessionCode, models.EventNotePositionUpdated, models.NotePosition{ID: req.ID, Position: req.Position})
	return nil
}

func (s *sessionService) Members(code string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	for id, c := range s.membership {
		if c == code {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

func (s *sessionService) ReapIdle(ctx context.Context, ttl time.Duration) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	occupied := make(map[string]struct{}, len(s.membership))
	for _, code := range s.membership {
		occupied[code] = struct{}{}
	}

	var reaped []string
	for _, code := range s.sessions.Idle(ctx, s.now().Add(-ttl)) {
		if code == DefaultSessionCode {
			continue
		}
		if _, ok := occupied[code]; ok {
			continue
		}
		if err := s.sessions.Delete(ctx, code); err != nil {
			s.logger.Err(err).Str("session", code).Msg("failed to reap session")
			continue
		}
		reaped = append(reaped, code)
	}

	return reaped
}

// checkMember reports whether peer may write to the session with code. A
// rejection has already been sent to peer when it returns false.
func (s *sessionService) checkMember(ctx context.Context, peer Peer, code string) (bool, error) {
	if s.membership[peer.ID()] == code {
		return true, nil
	}

	if !s.sessions.Exists(ctx, code) {
		s.reject(peer, app.MsgSessionNotFound)
		return false, nil
	}

	s.reject(peer, app.MsgNotSessionMember)
	return false, fmt.Errorf("session %q: %w", code, ErrNotSessionMember)
}

// moveMember puts the peer into session code. The session it leaves counts as
// active at this moment, so the reaper measures idleness from the last member
// leaving.
func (s *sessionService) moveMember(ctx context.Context, peerID, code string) {
	if prev, ok := s.membership[peerID]; ok && prev != code {
		s.touch(ctx, prev)
	}
	s.membership[peerID] = code
	s.touch(ctx, code)
}

func (s *sessionService) touch(ctx context.Context, code string) {
	if code == DefaultSessionCode {
		return
	}
	if err := s.sessions.Touch(ctx, code, s.now()); err != nil {
		s.logger.Debug().Err(err).Str("session", code).Msg("session not touched")
	}
}

func (s *sessionService) reject(peer Peer, message string) {
	s.send(peer, models.EventSessionError, message)
}

func (s *sessionService) broadcast(code string, event models.Event, payload any) {
	env, err := models.NewEnvelope(event, payload)
	if err != nil {
		s.logger.Err(err).Str("event", string(event)).Msg("failed to encode broadcast")
		return
	}

	for id, c := range s.membership {
		if c != code {
			continue
		}
		if err = s.peers[id].Send(env); err != nil {
			s.logger.Warn().Err(err).Str("peer", id).Str("event", string(event)).Msg("dropping event for peer")
		}
	}
}

func (s *sessionService) send(peer Peer, event models.Event, payload any) {
	env, err := models.NewEnvelope(event, payload)
	if err != nil {
		s.logger.Err(err).Str("event", string(event)).Msg("failed to encode event")
		return
	}
	if err = peer.Send(env); err != nil {
		s.logger.Warn().Err(err).Str("peer", peer.ID()).Str("event", string(event)).Msg("dropping event for peer")
	}
}
