package upload

import "errors"

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds the upload limit")
	ErrUnsupportedType = errors.New("unsupported content type")
	ErrInvalidKind     = errors.New("kind must be images or voice-notes")
	ErrForbidden       = errors.New("object does not belong to the caller")
)
