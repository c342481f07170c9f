package engine

import "fmt"

// RenderErrorType categorizes render errors.
type RenderErrorType int

const (
	// RenderParseFailed indicates the template text has invalid syntax.
	RenderParseFailed RenderErrorType = iota
	// RenderExecuteFailed indicates execution failed, e.g. an unresolved variable.
	RenderExecuteFailed
)

// RenderError is returned by TextEngine.Render.
type RenderError struct {
	// Type categorizes the error.
	Type RenderErrorType
	// Template is the name the template was rendered under.
	Template string
	// Cause is the text/template error.
	Cause error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.Type == RenderParseFailed {
		return fmt.Sprintf("template syntax error in %s: %v", e.Template, e.Cause)
	}
	return fmt.Sprintf("failed to render %s: %v", e.Template, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

func newRenderError(typ RenderErrorType, name string, cause error) *RenderError {
	return &RenderError{Type: typ, Template: name, Cause: cause}
}
