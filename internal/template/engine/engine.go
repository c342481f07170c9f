// Package engine renders template text against a model.Context.
package engine

import (
	"strings"
	"text/template"

	"github.com/tacogips/scaffold/internal/template/model"
)

// Engine renders one template text with a context.
type Engine interface {
	// Render renders text. name identifies the template in error messages.
	Render(name, text string, ctx model.Context) (string, error)
}

// TextEngine is the text/template backed Engine. Referencing a key missing from
// the context is an error.
type TextEngine struct {
	funcs template.FuncMap
}

// Option configures a TextEngine.
type Option func(*TextEngine)

// WithFuncs registers additional helpers. Later registrations replace earlier ones.
func WithFuncs(funcs template.FuncMap) Option {
	return func(e *TextEngine) {
		for name, fn := range funcs {
			e.funcs[name] = fn
		}
	}
}

// New creates a TextEngine with the default helpers registered.
func New(opts ...Option) *TextEngine {
	e := &TextEngine{funcs: DefaultFuncs()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render implements Engine.
func (e *TextEngine) Render(name, text string, ctx model.Context) (string, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(e.funcs).
		Parse(text)
	if err != nil {
		return "", newRenderError(RenderParseFailed, name, err)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, ctx.Data()); err != nil {
		return "", newRenderError(RenderExecuteFailed, name, err)
	}
	return out.String(), nil
}

// HasActions reports whether text contains template actions.
func HasActions(text string) bool {
	return strings.Contains(text, "{{")
}
