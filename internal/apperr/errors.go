package apperr

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrNoSession      = errors.New("no active session")
	ErrEmptyContent   = errors.New("empty content")
	ErrEmptyName      = errors.New("display name is required")
	ErrInvalidAnswers = errors.New("invalid answer set")
)
