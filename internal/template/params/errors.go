package params

import (
	"errors"
	"fmt"
)

// ValidationError reports a value that does not satisfy its parameter.
type ValidationError struct {
	// Key is the parameter key.
	Key string
	// Reason describes what is wrong with the value.
	Reason string
	// Input is the offending raw input, if any.
	Input string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("invalid value %q for %s: %s", e.Input, e.Key, e.Reason)
	}
	return fmt.Sprintf("invalid value for %s: %s", e.Key, e.Reason)
}

func newValidationError(key, input, reason string) *ValidationError {
	return &ValidationError{Key: key, Input: input, Reason: reason}
}

// IsValidationError reports whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
