package activity

import "errors"

var (
	// ErrInvalidInput indicates invalid activity input.
	ErrInvalidInput = errors.New("invalid activity input")
	// ErrActivityNotFound indicates the item doesn't exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrInvalidOutcome indicates the outcome is not offered for the item's type.
	ErrInvalidOutcome = errors.New("invalid outcome")
	// ErrAlreadyDone indicates the item was already marked done.
	ErrAlreadyDone = errors.New("activity already done")
)
