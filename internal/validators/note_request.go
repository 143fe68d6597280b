// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"unicode/utf8"

	"github.com/MKhiriev/sticky-board/models"
)

// Field name constants used to scope validation to a subset of fields.
const (
	// FieldNoteID targets the client-generated note identifier.
	FieldNoteID = "note_id"

	// FieldContent targets the note text.
	FieldContent = "content"

	// FieldPosition targets the note's board coordinates.
	FieldPosition = "position"

	// FieldSessionCode targets the session code carried in every note request.
	FieldSessionCode = "session_code"
)

const (
	MaxNoteIDLength      = 128
	MaxNoteContentLength = 2000
	MaxSessionCodeLength = 64
	// MaxCoordinate bounds both axes of a note position.
	MaxCoordinate = 1 << 20
)

// NoteRequestValidator implements [Validator] for the note requests peers
// send to the relay: CreateNoteRequest, DeleteNoteRequest and
// UpdateNotePositionRequest. Value and pointer forms are both accepted.
type NoteRequestValidator struct {
}

// NewNoteRequestValidator returns a [NoteRequestValidator] as a [Validator].
func NewNoteRequestValidator() Validator {
	return &NoteRequestValidator{}
}

// Validate dispatches on the dynamic type of obj and returns
// ErrUnsupportedType for anything else. With no fields given, every field
// of the request is checked.
func (v *NoteRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateNoteRequest:
		return v.validateCreate(ctx, value, fields...)
	case *models.CreateNoteRequest:
		return v.validateCreate(ctx, *value, fields...)

	case models.DeleteNoteRequest:
		return v.validateDelete(ctx, value, fields...)
	case *models.DeleteNoteRequest:
		return v.validateDelete(ctx, *value, fields...)

	case models.UpdateNotePositionRequest:
		return v.validateMove(ctx, value, fields...)
	case *models.UpdateNotePositionRequest:
		return v.validateMove(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteRequestValidator) validateCreate(_ context.Context, req models.CreateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID, FieldContent, FieldPosition, FieldSessionCode}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldNoteID:
			err = checkNoteID(req.Note.ID)
		case FieldContent:
			if utf8.RuneCountInString(req.Note.Content) > MaxNoteContentLength {
				err = ErrContentTooLong
			}
		case FieldPosition:
			err = checkPosition(req.Note.Position)
		case FieldSessionCode:
			err = checkSessionCode(req.SessionCode)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *NoteRequestValidator) validateDelete(_ context.Context, req models.DeleteNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID, FieldSessionCode}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldNoteID:
			err = checkNoteID(req.ID)
		case FieldSessionCode:
			err = checkSessionCode(req.SessionCode)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *NoteRequestValidator) validateMove(_ context.Context, req models.UpdateNotePositionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID, FieldPosition, FieldSessionCode}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldNoteID:
			err = checkNoteID(req.ID)
		case FieldPosition:
			err = checkPosition(req.Position)
		case FieldSessionCode:
			err = checkSessionCode(req.SessionCode)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func checkNoteID(id string) error {
	if id == "" || len(id) > MaxNoteIDLength {
		return ErrInvalidNoteID
	}
	return nil
}

func checkSessionCode(code string) error {
	if len(code) > MaxSessionCodeLength {
		return ErrInvalidSessionID
	}
	return nil
}

func checkPosition(p models.Position) error {
	for _, c := range []float64{p.X, p.Y} {
		if math.IsNaN(c) || math.IsInf(c, 0) || math.Abs(c) > MaxCoordinate {
			return ErrInvalidPosition
		}
	}
	return nil
}
