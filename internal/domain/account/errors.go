package account

import "errors"

var (
	// ErrAccountNotFound indicates the account doesn't exist in the dataset.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidDataset indicates the dataset failed validation.
	ErrInvalidDataset = errors.New("invalid dataset")
)
