package edit

import "errors"

var (
	// ErrInvalidInput indicates an empty browser or element ID.
	ErrInvalidInput = errors.New("invalid edit input")
	// ErrInvalidTheme indicates a theme other than dark or light.
	ErrInvalidTheme = errors.New("invalid theme")
)
