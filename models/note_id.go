package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// noteID decodes a note id sent either as a JSON string or as a JSON number.
// Browser clients use millisecond timestamps as ids; the number is kept in
// its literal form, so 1718000000000 becomes "1718000000000".
type noteID string

func (id *noteID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = noteID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("note id must be a string or a number: %w", err)
	}
	*id = noteID(n.String())
	return nil
}

// DecodeNoteID decodes a bare note id payload such as the one carried by
// [EventNoteDeleted].
func DecodeNoteID(data []byte) (string, error) {
	var id noteID
	if err := json.Unmarshal(data, &id); err != nil {
		return "", err
	}
	return string(id), nil
}

func (n *Note) UnmarshalJSON(data []byte) error {
	type plain Note
	aux := struct {
		*plain
		ID noteID `json:"id"`
	}{plain: (*plain)(n)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	n.ID = string(aux.ID)
	return nil
}

func (r *DeleteNoteRequest) UnmarshalJSON(data []byte) error {
	type plain DeleteNoteRequest
	aux := struct {
		*plain
		ID noteID `json:"id"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.ID = string(aux.ID)
	return nil
}

func (r *UpdateNotePositionRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateNotePositionRequest
	aux := struct {
		*plain
		ID noteID `json:"id"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.ID = string(aux.ID)
	return nil
}

func (p *NotePosition) UnmarshalJSON(data []byte) error {
	type plain NotePosition
	aux := struct {
		*plain
		ID noteID `json:"id"`
	}{plain: (*plain)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.ID = string(aux.ID)
	return nil
}
