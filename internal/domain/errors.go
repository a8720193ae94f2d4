package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("property unavailable for requested dates")
	ErrActiveApplication = errors.New("active application already exists")
	ErrValidation        = errors.New("validation failed")
)
