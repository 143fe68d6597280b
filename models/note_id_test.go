package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNote_UnmarshalAcceptsNumericID(t *testing.T) {
	var notes []Note
	raw := `[
		{"id":1718000000000,"content":"buy milk","position":{"x":400,"y":120}},
		{"id":"01J0ABCDEF","content":"call mom","position":{"x":1,"y":2}}
	]`
	require.NoError(t, json.Unmarshal([]byte(raw), &notes))

	require.Len(t, notes, 2)
	assert.Equal(t, Note{ID: "1718000000000", Content: "buy milk", Position: Position{X: 400, Y: 120}}, notes[0])
	assert.Equal(t, Note{ID: "01J0ABCDEF", Content: "call mom", Position: Position{X: 1, Y: 2}}, notes[1])
}

func TestNote_UnmarshalRejectsOtherIDTypes(t *testing.T) {
	var n Note
	assert.Error(t, json.Unmarshal([]byte(`{"id":{"x":1}}`), &n))
	assert.Error(t, json.Unmarshal([]byte(`{"id":true}`), &n))
}

func TestNoteRequests_UnmarshalNumericID(t *testing.T) {
	var del DeleteNoteRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id":42,"sessionCode":"ABC123"}`), &del))
	assert.Equal(t, DeleteNoteRequest{ID: "42", SessionCode: "ABC123"}, del)

	var move UpdateNotePositionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id":42,"position":{"x":3,"y":4},"sessionCode":"ABC123"}`), &move))
	assert.Equal(t, UpdateNotePositionRequest{ID: "42", Position: Position{X: 3, Y: 4}, SessionCode: "ABC123"}, move)

	var echo NotePosition
	require.NoError(t, json.Unmarshal([]byte(`{"id":42,"position":{"x":3,"y":4}}`), &echo))
	assert.Equal(t, NotePosition{ID: "42", Position: Position{X: 3, Y: 4}}, echo)

	var create CreateNoteRequest
	require.NoError(t, json.Unmarshal([]byte(`{"note":{"id":7,"content":"x","position":{"x":0,"y":0}}}`), &create))
	assert.Equal(t, "7", create.Note.ID)
}

func TestDecodeNoteID(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: `"n1"`, want: "n1"},
		{raw: `1718000000000`, want: "1718000000000"},
		{raw: ` 7 `, want: "7"},
		{raw: `null`, want: ""},
		{raw: `[1]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := DecodeNoteID([]byte(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
