// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/MKhiriev/sticky-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreate() models.CreateNoteRequest {
	return models.CreateNoteRequest{
		Note:        models.Note{ID: "01J0000000000000000000000", Content: "buy milk", Position: models.Position{X: 10, Y: 4}},
		SessionCode: "ABC123",
	}
}

func TestNewNoteRequestValidator(t *testing.T) {
	require.NotNil(t, NewNoteRequestValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewNoteRequestValidator()
	ctx := context.Background()

	create := validCreate()
	del := models.DeleteNoteRequest{ID: "n1"}
	move := models.UpdateNotePositionRequest{ID: "n1", Position: models.Position{X: 1, Y: 2}}

	assert.NoError(t, v.Validate(ctx, create))
	assert.NoError(t, v.Validate(ctx, &create))
	assert.NoError(t, v.Validate(ctx, del))
	assert.NoError(t, v.Validate(ctx, &del))
	assert.NoError(t, v.Validate(ctx, move))
	assert.NoError(t, v.Validate(ctx, &move))

	assert.ErrorIs(t, v.Validate(ctx, "createNote"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.Note{}), ErrUnsupportedType)
}

func TestValidate_CreateNoteRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.CreateNoteRequest)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.CreateNoteRequest) {}},
		{name: "default board has no code", mutate: func(r *models.CreateNoteRequest) { r.SessionCode = "" }},
		{name: "empty content is allowed", mutate: func(r *models.CreateNoteRequest) { r.Note.Content = "" }},
		{name: "empty id", mutate: func(r *models.CreateNoteRequest) { r.Note.ID = "" }, wantErr: ErrInvalidNoteID},
		{name: "long id", mutate: func(r *models.CreateNoteRequest) { r.Note.ID = strings.Repeat("a", MaxNoteIDLength+1) }, wantErr: ErrInvalidNoteID},
		{name: "long content", mutate: func(r *models.CreateNoteRequest) { r.Note.Content = strings.Repeat("ж", MaxNoteContentLength+1) }, wantErr: ErrContentTooLong},
		{name: "content at the limit", mutate: func(r *models.CreateNoteRequest) { r.Note.Content = strings.Repeat("ж", MaxNoteContentLength) }},
		{name: "far away", mutate: func(r *models.CreateNoteRequest) { r.Note.Position.X = MaxCoordinate + 1 }, wantErr: ErrInvalidPosition},
		{name: "nan", mutate: func(r *models.CreateNoteRequest) { r.Note.Position.Y = math.NaN() }, wantErr: ErrInvalidPosition},
		{name: "long session code", mutate: func(r *models.CreateNoteRequest) { r.SessionCode = strings.Repeat("A", MaxSessionCodeLength+1) }, wantErr: ErrInvalidSessionID},
		{
			name:   "scoped to content ignores id",
			mutate: func(r *models.CreateNoteRequest) { r.Note.ID = "" },
			fields: []string{FieldContent},
		},
		{name: "unknown field", mutate: func(*models.CreateNoteRequest) {}, fields: []string{"colour"}, wantErr: ErrUnknownField},
	}

	v := NewNoteRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_DeleteNoteRequest(t *testing.T) {
	v := NewNoteRequestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.DeleteNoteRequest{}), ErrInvalidNoteID)
	assert.ErrorIs(t, v.Validate(ctx, models.DeleteNoteRequest{ID: "n1"}, FieldPosition), ErrUnknownField)
	assert.NoError(t, v.Validate(ctx, models.DeleteNoteRequest{}, FieldSessionCode))
}

func TestValidate_UpdateNotePositionRequest(t *testing.T) {
	v := NewNoteRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.UpdateNotePositionRequest{ID: "n1", Position: models.Position{X: -5, Y: 0}}))
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateNotePositionRequest{Position: models.Position{X: 1}}), ErrInvalidNoteID)
	assert.ErrorIs(t,
		v.Validate(ctx, models.UpdateNotePositionRequest{ID: "n1", Position: models.Position{Y: math.Inf(-1)}}),
		ErrInvalidPosition,
	)
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateNotePositionRequest{ID: "n1"}, FieldContent), ErrUnknownField)
}
