package app

import (
	"errors"
	"fmt"

	"github.com/tacogips/scaffold/internal/template/descriptor"
	"github.com/tacogips/scaffold/internal/template/generator"
	"github.com/tacogips/scaffold/internal/template/params"
	"github.com/tacogips/scaffold/internal/template/provider"
)

// AppErrorType represents the type of application error. Each type maps to
// one process exit code.
type AppErrorType int

const (
	// GenerationFailed indicates a failure without a more specific type.
	GenerationFailed AppErrorType = iota
	// ValidationFailed indicates an invalid descriptor, parameter value or option.
	ValidationFailed
	// DestinationCollision indicates the project directory already exists.
	DestinationCollision
	// PartialFailure indicates generation finished with per-file failures.
	PartialFailure
	// SourceAcquisitionFailed indicates the template could not be acquired.
	SourceAcquisitionFailed
)

// Process exit codes.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
	ExitCollision  = 3
	ExitPartial    = 4
	ExitSource     = 5
)

// String returns the string representation of the error type.
func (t AppErrorType) String() string {
	switch t {
	case GenerationFailed:
		return "GenerationFailed"
	case ValidationFailed:
		return "ValidationFailed"
	case DestinationCollision:
		return "DestinationCollision"
	case PartialFailure:
		return "PartialFailure"
	case SourceAcquisitionFailed:
		return "SourceAcquisitionFailed"
	default:
		return "Unknown"
	}
}

// ExitCode returns the process exit code for the error type.
func (t AppErrorType) ExitCode() int {
	switch t {
	case ValidationFailed:
		return ExitValidation
	case DestinationCollision:
		return ExitCollision
	case PartialFailure:
		return ExitPartial
	case SourceAcquisitionFailed:
		return ExitSource
	default:
		return ExitFailure
	}
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewSourceError creates a source acquisition error.
func NewSourceError(message string, cause error) *AppError {
	return NewAppError(SourceAcquisitionFailed, message, cause)
}

// NewGenerationError creates an error classified from its cause.
func NewGenerationError(message string, cause error) *AppError {
	return NewAppError(Classify(cause), message, cause)
}

// Classify maps an error from the lower layers onto an AppErrorType.
func Classify(err error) AppErrorType {
	var appErr *AppError
	var descErr *descriptor.DescriptorError
	switch {
	case err == nil:
		return GenerationFailed
	case errors.As(err, &appErr):
		return appErr.Type
	case provider.IsProviderError(err):
		return SourceAcquisitionFailed
	case errors.As(err, &descErr), params.IsValidationError(err):
		return ValidationFailed
	case generator.IsType(err, generator.GeneratorDestinationCollision):
		return DestinationCollision
	default:
		return GenerationFailed
	}
}

// ExitCode returns the process exit code for err; 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return Classify(err).ExitCode()
}
