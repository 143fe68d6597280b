package utils

import (
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// SessionCodeLength is the number of characters in a generated session code.
const SessionCodeLength = 6

// UUIDGenerator produces random identifiers for peers, trace ids and session
// codes.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// SessionCode returns a short upper-case code users can read out to each
// other. It is taken from the random part of a v4 UUID.
func (g *UUIDGenerator) SessionCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[len(raw)-SessionCodeLength:])
}

// NoteIDGenerator produces note identities. ULIDs sort by creation time, so
// they keep the ordering the board relies on for stacking.
type NoteIDGenerator struct {
}

func NewNoteIDGenerator() *NoteIDGenerator {
	return &NoteIDGenerator{}
}

func (g *NoteIDGenerator) Generate() string {
	return ulid.Make().String()
}
