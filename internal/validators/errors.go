package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidNoteID    = errors.New("invalid note id")
	ErrContentTooLong   = errors.New("note content is too long")
	ErrInvalidPosition  = errors.New("invalid note position")
	ErrInvalidSessionID = errors.New("invalid session code")
)
