package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/wirecrm/internal/domain/account"
	"github.com/rpggio/wirecrm/internal/domain/activity"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unknown errors map to nil.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, activity.ErrActivityNotFound):
		return &APIError{Code: "ACTIVITY_NOT_FOUND", Message: "activity not found", RecoveryHint: "Call list_activities for valid IDs"}
	case errors.Is(err, activity.ErrInvalidOutcome):
		return &APIError{Code: "INVALID_OUTCOME", Message: err.Error(), RecoveryHint: "Use an outcome offered for the activity type"}
	case errors.Is(err, activity.ErrAlreadyDone):
		return &APIError{Code: "ALREADY_DONE", Message: "activity already marked done"}
	case errors.Is(err, activity.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, account.ErrAccountNotFound):
		return &APIError{Code: "ACCOUNT_NOT_FOUND", Message: "account not found", RecoveryHint: "Call list_accounts for valid IDs"}
	default:
		return nil
	}
}

// toolError converts err into the error a tool handler returns.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
