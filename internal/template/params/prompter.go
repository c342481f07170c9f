package params

import (
	"context"

	"github.com/tacogips/scaffold/internal/template/model"
)

// Answer is the raw input returned by a Prompter. Text carries scalar and
// select answers; Choices carries multiselect answers. A nil Choices means no
// answer, while a non-nil empty Choices is an explicit empty selection.
type Answer struct {
	Text    string
	Choices []string
}

// Request describes one prompt.
type Request struct {
	// Spec is the parameter being asked for.
	Spec model.ParameterSpec
	// Attempt starts at 1 and grows on every retry of the same parameter.
	Attempt int
	// Problem is why the previous answer or override was rejected, or nil.
	Problem *ValidationError
}

// Prompter obtains raw answers from the user.
type Prompter interface {
	Ask(ctx context.Context, req Request) (Answer, error)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(ctx context.Context, req Request) (Answer, error)

// Ask implements Prompter.
func (f PrompterFunc) Ask(ctx context.Context, req Request) (Answer, error) {
	return f(ctx, req)
}

// EmptyPrompter answers every request with an empty answer, so defaults apply
// and required parameters without one fail. Used for non-interactive runs.
var EmptyPrompter Prompter = PrompterFunc(func(context.Context, Request) (Answer, error) {
	return Answer{}, nil
})
