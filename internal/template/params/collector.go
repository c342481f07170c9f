// Package params collects typed parameter values from overrides and prompts,
// and builds the render context from them.
package params

import (
	"context"
	"fmt"

	"github.com/tacogips/scaffold/internal/debug"
	"github.com/tacogips/scaffold/internal/template/model"
)

// NameMessage is the prompt shown for the project name.
const NameMessage = "What is the name of your generated project?"

// Overrides are values supplied up front, keyed by parameter key. Values are
// strings (from --set) or decoded YAML scalars and lists.
type Overrides map[string]any

// NameSpec returns the implicit parameter the project name is collected with.
func NameSpec() model.ParameterSpec {
	return model.StringParam{ParamBase: model.ParamBase{
		Name:       model.KeyName,
		Prompt:     NameMessage,
		IsRequired: true,
	}}
}

// Collector resolves parameter values, preferring overrides and falling back to
// the Prompter.
type Collector struct {
	prompter    Prompter
	maxAttempts int
}

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithMaxAttempts bounds prompts per parameter. Zero means unlimited.
func WithMaxAttempts(n int) CollectorOption {
	return func(c *Collector) {
		c.maxAttempts = n
	}
}

// NewCollector creates a Collector that asks p for missing values.
func NewCollector(p Prompter, opts ...CollectorOption) *Collector {
	c := &Collector{prompter: p}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect resolves every spec in declaration order.
//
// A valid override is used without prompting. An invalid override is reported
// to the Prompter as the Problem of the first request. Rejected answers are
// retried until one validates or the attempt limit is reached, in which case
// the last *ValidationError is returned.
func (c *Collector) Collect(ctx context.Context, specs []model.ParameterSpec, overrides Overrides) (map[string]model.Value, error) {
	values := make(map[string]model.Value, len(specs))
	for _, spec := range specs {
		v, err := c.resolve(ctx, spec, overrides)
		if err != nil {
			return nil, err
		}
		values[spec.Key()] = v
	}
	return values, nil
}

// CollectName resolves the project name with the same override-then-prompt
// rules as declared parameters.
func (c *Collector) CollectName(ctx context.Context, overrides Overrides) (string, error) {
	v, err := c.resolve(ctx, NameSpec(), overrides)
	if err != nil {
		return "", err
	}
	return v.Str(), nil
}

func (c *Collector) resolve(ctx context.Context, spec model.ParameterSpec, overrides Overrides) (model.Value, error) {
	var problem *ValidationError

	if raw, ok := overrides[spec.Key()]; ok {
		v, verr := Coerce(spec, answerFromOverride(spec, raw))
		if verr == nil {
			debug.Debug("[params] %s = %s (override)", spec.Key(), v)
			return v, nil
		}
		debug.Debug("[params] Override rejected: %v", verr)
		problem = verr
	}

	for attempt := 1; ; attempt++ {
		if c.maxAttempts > 0 && attempt > c.maxAttempts {
			return model.Value{}, problem
		}
		if err := ctx.Err(); err != nil {
			return model.Value{}, err
		}
		if c.prompter == nil {
			return model.Value{}, fmt.Errorf("no prompter available for parameter %s", spec.Key())
		}

		ans, err := c.prompter.Ask(ctx, Request{Spec: spec, Attempt: attempt, Problem: problem})
		if err != nil {
			return model.Value{}, fmt.Errorf("prompt for %s: %w", spec.Key(), err)
		}

		v, verr := Coerce(spec, ans)
		if verr == nil {
			debug.Debug("[params] %s = %s", spec.Key(), v)
			return v, nil
		}
		debug.Debug("[params] Attempt %d rejected: %v", attempt, verr)
		problem = verr
	}
}
