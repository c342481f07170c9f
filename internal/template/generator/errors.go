package generator

import (
	"errors"
	"fmt"
)

// GeneratorErrorType categorizes generator errors.
type GeneratorErrorType int

const (
	// GeneratorPathRender indicates a path could not be rendered. Fatal.
	GeneratorPathRender GeneratorErrorType = iota
	// GeneratorDestinationCollision indicates the destination exists and the mode forbids writing. Fatal.
	GeneratorDestinationCollision
	// GeneratorDestinationUnavailable indicates the destination root could not be prepared. Fatal.
	GeneratorDestinationUnavailable
	// GeneratorWalkFailed indicates the template tree could not be read. Fatal.
	GeneratorWalkFailed
	// GeneratorReadFailed indicates a template file could not be read. Recorded per entry.
	GeneratorReadFailed
	// GeneratorContentRender indicates file content could not be rendered. Recorded per entry.
	GeneratorContentRender
	// GeneratorWriteFailed indicates a file or directory write failed. Recorded per entry.
	GeneratorWriteFailed
	// GeneratorNotesRender indicates the notes template could not be rendered.
	GeneratorNotesRender
)

// String returns the error type name.
func (t GeneratorErrorType) String() string {
	switch t {
	case GeneratorPathRender:
		return "PathRenderError"
	case GeneratorDestinationCollision:
		return "DestinationCollision"
	case GeneratorDestinationUnavailable:
		return "DestinationUnavailable"
	case GeneratorWalkFailed:
		return "WalkFailed"
	case GeneratorReadFailed:
		return "ReadFailed"
	case GeneratorContentRender:
		return "ContentRenderError"
	case GeneratorWriteFailed:
		return "FileWriteError"
	case GeneratorNotesRender:
		return "NotesRenderError"
	default:
		return "Unknown"
	}
}

// GeneratorError represents generator-specific errors.
type GeneratorError struct {
	// Type categorizes the error.
	Type GeneratorErrorType
	// Message is the error message.
	Message string
	// File is the path related to the error (if applicable).
	File string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *GeneratorError) Error() string {
	if e.File != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (file: %s): %v", e.Message, e.File, e.Cause)
		}
		return fmt.Sprintf("%s (file: %s)", e.Message, e.File)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// newGeneratorError creates a new GeneratorError.
func newGeneratorError(typ GeneratorErrorType, message, file string, cause error) *GeneratorError {
	return &GeneratorError{
		Type:    typ,
		Message: message,
		File:    file,
		Cause:   cause,
	}
}

// IsType reports whether err is a GeneratorError of the given type.
func IsType(err error, typ GeneratorErrorType) bool {
	var ge *GeneratorError
	return errors.As(err, &ge) && ge.Type == typ
}
