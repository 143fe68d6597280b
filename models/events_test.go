package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope_NilPayload(t *testing.T) {
	env, err := NewEnvelope(EventCreateSession, nil)
	require.NoError(t, err)
	assert.Equal(t, EventCreateSession, env.Event)
	assert.Nil(t, env.Data)

	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"createSession"}`, string(raw))
}

func TestNewEnvelope_CreateNoteOmitsEmptySessionCode(t *testing.T) {
	env, err := NewEnvelope(EventCreateNote, CreateNoteRequest{
		Note: Note{ID: "n1", Content: "buy milk", Status: NotePendingCreate},
	})
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"note":{"id":"n1","content":"buy milk","position":{"x":0,"y":0}}}`,
		string(env.Data),
	)
}

func TestNewEnvelope_StringPayload(t *testing.T) {
	env, err := NewEnvelope(EventJoinSession, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, `"ABC123"`, string(env.Data))
}

func TestNewEnvelope_UnmarshalablePayload(t *testing.T) {
	_, err := NewEnvelope(EventCreateNote, make(chan int))
	assert.Error(t, err)
}

func TestNoteStatus_String(t *testing.T) {
	assert.Equal(t, "confirmed", NoteConfirmed.String())
	assert.Equal(t, "pending-move", NotePendingMove.String())
	assert.Equal(t, "unknown", NoteStatus(42).String())
}

func TestNewAppBuildInfo_FillsNA(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
