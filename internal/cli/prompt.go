package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/core"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/tacogips/scaffold/internal/debug"
	"github.com/tacogips/scaffold/internal/template/model"
	"github.com/tacogips/scaffold/internal/template/params"
)

// errInterrupted is returned when the user presses Ctrl-C at a prompt.
var errInterrupted = errors.New("interrupted")

// surveyPrompter asks for parameter values on the terminal.
type surveyPrompter struct {
	p    *printer
	opts []survey.AskOpt
}

func newSurveyPrompter(p *printer, noColor bool) *surveyPrompter {
	core.DisableColor = noColor
	return &surveyPrompter{p: p}
}

// Ask implements params.Prompter.
func (s *surveyPrompter) Ask(ctx context.Context, req params.Request) (params.Answer, error) {
	if err := ctx.Err(); err != nil {
		return params.Answer{}, err
	}
	if req.Problem != nil {
		s.p.warning("%s", req.Problem.Error())
	}

	prompt, resp := question(req.Spec)
	opts := append([]survey.AskOpt{survey.WithValidator(validator(req.Spec))}, s.opts...)

	debug.Debug("[cli] Prompting for %s (attempt %d)", req.Spec.Key(), req.Attempt)
	if err := survey.AskOne(prompt, resp, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return params.Answer{}, errInterrupted
		}
		return params.Answer{}, fmt.Errorf("prompt for %s failed: %w", req.Spec.Key(), err)
	}
	return toAnswer(resp), nil
}

// question builds the survey prompt for spec and a pointer to receive the
// answer.
func question(spec model.ParameterSpec) (survey.Prompt, any) {
	msg := spec.Message()
	if msg == "" {
		msg = spec.Key()
	}
	def, hasDefault := spec.DefaultValue()

	switch p := spec.(type) {
	case model.BooleanParam:
		prompt := &survey.Confirm{Message: msg}
		if hasDefault {
			prompt.Default = def.Bool()
		}
		return prompt, new(bool)

	case model.SelectParam:
		prompt := &survey.Select{Message: msg, Options: p.Values}
		if hasDefault {
			prompt.Default = def.String()
		}
		return prompt, new(string)

	case model.MultiSelectParam:
		prompt := &survey.MultiSelect{Message: msg, Options: p.Values}
		if hasDefault {
			prompt.Default = def.List()
		}
		return prompt, new([]string)

	default:
		prompt := &survey.Input{Message: msg}
		if hasDefault {
			prompt.Default = def.String()
		}
		switch spec.Kind() {
		case model.KindInteger:
			prompt.Help = "a whole number"
		case model.KindFloat:
			prompt.Help = "a number"
		}
		return prompt, new(string)
	}
}

// validator rejects answers the collector would reject, so the user is asked
// again in place.
func validator(spec model.ParameterSpec) survey.Validator {
	return func(ans any) error {
		if _, verr := params.Coerce(spec, toAnswer(ans)); verr != nil {
			return verr
		}
		return nil
	}
}

// toAnswer converts a survey response, or a pointer to one, to a raw answer.
func toAnswer(resp any) params.Answer {
	switch v := resp.(type) {
	case *string:
		return params.Answer{Text: *v}
	case *bool:
		return toAnswer(*v)
	case *[]string:
		// The multiselect shows the default pre-checked, so whatever is left
		// checked is the answer, including nothing.
		if *v == nil {
			return params.Answer{Choices: []string{}}
		}
		return params.Answer{Choices: *v}
	case string:
		return params.Answer{Text: v}
	case bool:
		return params.Answer{Text: strconv.FormatBool(v)}
	case []string:
		return params.Answer{Choices: v}
	case core.OptionAnswer:
		return params.Answer{Text: v.Value}
	case []core.OptionAnswer:
		choices := make([]string, 0, len(v))
		for _, o := range v {
			choices = append(choices, o.Value)
		}
		return params.Answer{Choices: choices}
	case nil:
		return params.Answer{}
	default:
		return params.Answer{Text: fmt.Sprint(v)}
	}
}
