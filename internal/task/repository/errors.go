package repository

import "errors"

var (
	ErrFailedToLoad = errors.New("failed to load tasks")
	ErrFailedToSave = errors.New("failed to save tasks")

	ErrMalformedLine = errors.New("malformed line")
	ErrUnknownKind   = errors.New("unknown task kind")
)
