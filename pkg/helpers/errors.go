package helpers

import "errors"

var (
	ErrMissingHelperName = errors.New("helpers: helper name is required")
	ErrNilHelper         = errors.New("helpers: helper function is nil")
	ErrInvalidHelper     = errors.New("helpers: helper must be a function with one return value")
	ErrDuplicateHelper   = errors.New("helpers: helper already registered")
)
