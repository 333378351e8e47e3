package domain

import (
	"errors"
	"strings"
)

// Common errors shared by both persistence backends
var (
	// ErrNotFound is returned by update/delete paths that target a record
	// id that does not exist. Reads surface absence as a nil record instead.
	ErrNotFound = errors.New("record not found")

	// ErrBackendUnavailable is returned when the selected backend cannot be
	// reached. The service never falls back to the other backend mid-operation.
	ErrBackendUnavailable = errors.New("persistence backend unavailable")
)

// ValidationError carries every rule violation collected for a record.
// It is raised only at the write boundary; construction and read-only
// derivation never produce it.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface with the joined violation messages
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// AsValidationError unwraps err into a *ValidationError when possible
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ValidationMessages maps validator tags to user-friendly messages
var ValidationMessages = map[string]string{
	"required":   "is required",
	"email":      "must be a valid email address",
	"oneof":      "must be one of the allowed values",
	"gte":        "must be greater than or equal to the minimum value",
	"lte":        "must be less than or equal to the maximum value",
	"dateonly":   "must be a valid date in YYYY-MM-DD format",
	"loosephone": "must be a valid phone number",
}

// GetValidationMessage returns a human-readable message for a validation tag
func GetValidationMessage(tag string) string {
	if msg, ok := ValidationMessages[tag]; ok {
		return msg
	}
	return "failed rule: " + tag
}
