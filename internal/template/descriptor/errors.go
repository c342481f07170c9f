package descriptor

import (
	"errors"
	"fmt"
)

// DescriptorErrorType categorizes descriptor errors.
type DescriptorErrorType int

const (
	// MalformedDescriptor indicates the descriptor could not be read or is not valid TOML.
	MalformedDescriptor DescriptorErrorType = iota
	// SchemaViolation indicates the descriptor is valid TOML but breaks a schema rule.
	SchemaViolation
)

// String returns the error type name.
func (t DescriptorErrorType) String() string {
	switch t {
	case MalformedDescriptor:
		return "MalformedDescriptor"
	case SchemaViolation:
		return "SchemaViolation"
	default:
		return "Unknown"
	}
}

// DescriptorError represents a descriptor loading error.
type DescriptorError struct {
	// Type categorizes the error.
	Type DescriptorErrorType
	// Message is the error message.
	Message string
	// File is the descriptor path (empty when parsing raw bytes).
	File string
	// Field is the dotted descriptor key the error refers to, e.g. "parameters.license.default".
	Field string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *DescriptorError) Error() string {
	msg := "invalid descriptor"
	if e.File != "" {
		msg += " " + e.File
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" [field: %s]", e.Field)
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error.
func (e *DescriptorError) Unwrap() error {
	return e.Cause
}

func newMalformedError(message string, cause error) *DescriptorError {
	return &DescriptorError{Type: MalformedDescriptor, Message: message, Cause: cause}
}

func newSchemaError(field, message string) *DescriptorError {
	return &DescriptorError{Type: SchemaViolation, Field: field, Message: message}
}

// IsSchemaViolation reports whether err is a SchemaViolation descriptor error.
func IsSchemaViolation(err error) bool {
	var de *DescriptorError
	return errors.As(err, &de) && de.Type == SchemaViolation
}

// IsMalformed reports whether err is a MalformedDescriptor descriptor error.
func IsMalformed(err error) bool {
	var de *DescriptorError
	return errors.As(err, &de) && de.Type == MalformedDescriptor
}
