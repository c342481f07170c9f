package provider

import (
	"errors"
	"fmt"
)

// ProviderErrorType classifies a template acquisition failure.
type ProviderErrorType int

const (
	// ProviderFetchFailed indicates the template could not be fetched.
	ProviderFetchFailed ProviderErrorType = iota
	// ProviderNotFound indicates the location, repository or branch does not exist.
	ProviderNotFound
	// ProviderAuthFailed indicates the remote rejected the credentials.
	ProviderAuthFailed
	// ProviderTimeout indicates the operation was cancelled or timed out.
	ProviderTimeout
	// ProviderInvalidURL indicates the location could not be parsed.
	ProviderInvalidURL
	// ProviderInvalidTemplate indicates the tree is not a template.
	ProviderInvalidTemplate
)

// String returns the string representation of the error type.
func (t ProviderErrorType) String() string {
	switch t {
	case ProviderFetchFailed:
		return "FetchFailed"
	case ProviderNotFound:
		return "NotFound"
	case ProviderAuthFailed:
		return "AuthFailed"
	case ProviderTimeout:
		return "Timeout"
	case ProviderInvalidURL:
		return "InvalidURL"
	case ProviderInvalidTemplate:
		return "InvalidTemplate"
	default:
		return "Unknown"
	}
}

// ProviderError is a source acquisition failure.
type ProviderError struct {
	// Type is the error type classification.
	Type ProviderErrorType
	// Message is the human-readable error message.
	Message string
	// Provider is the provider name ("local" or "git").
	Provider string
	// Location is the template location that failed.
	Location string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s provider error [%s] for '%s': %s (caused by: %v)",
			e.Provider, e.Type.String(), e.Location, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s provider error [%s] for '%s': %s",
		e.Provider, e.Type.String(), e.Location, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a new ProviderError.
func NewProviderError(typ ProviderErrorType, provider, location, message string, cause error) *ProviderError {
	return &ProviderError{
		Type:     typ,
		Message:  message,
		Provider: provider,
		Location: location,
		Cause:    cause,
	}
}

// NewFetchError creates a fetch failed error.
func NewFetchError(provider, location string, cause error) *ProviderError {
	return NewProviderError(ProviderFetchFailed, provider, location, "failed to fetch template", cause)
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(provider, location string) *ProviderError {
	return NewProviderError(ProviderNotFound, provider, location, "template not found", nil)
}

// NewAuthError creates an authentication failed error.
func NewAuthError(provider, location string, cause error) *ProviderError {
	return NewProviderError(ProviderAuthFailed, provider, location, "authentication failed", cause)
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(provider, location string, cause error) *ProviderError {
	return NewProviderError(ProviderTimeout, provider, location, "operation timed out or was cancelled", cause)
}

// NewInvalidURLError creates an invalid URL error.
func NewInvalidURLError(provider, location string, cause error) *ProviderError {
	return NewProviderError(ProviderInvalidURL, provider, location, "invalid location", cause)
}

// NewInvalidTemplateError creates an invalid template error.
func NewInvalidTemplateError(provider, location, message string, cause error) *ProviderError {
	return NewProviderError(ProviderInvalidTemplate, provider, location, message, cause)
}

// IsProviderError reports whether err is (or wraps) a ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
