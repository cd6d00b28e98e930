package navigation

import "errors"

var (
	// ErrScreenNotFound indicates no screen is registered under the ID.
	ErrScreenNotFound = errors.New("screen not found")
	// ErrInvalidInput indicates invalid navigation input.
	ErrInvalidInput = errors.New("invalid navigation input")
)
