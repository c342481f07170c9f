package params

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/tacogips/scaffold/internal/template/model"
)

// Coerce converts a raw answer to spec's kind and validates it.
//
// An empty answer resolves to the default when one is declared. Without a
// default, an empty answer fails for required parameters and for select
// parameters, and otherwise resolves to the kind's zero value.
func Coerce(spec model.ParameterSpec, ans Answer) (model.Value, *ValidationError) {
	key := spec.Key()
	text := strings.TrimSpace(ans.Text)

	if spec.Kind() != model.KindMultiSelect && len(ans.Choices) > 0 {
		return model.Value{}, newValidationError(key, strings.Join(ans.Choices, ","), "expected a single value")
	}

	if isEmptyAnswer(spec, text, ans.Choices) {
		if def, ok := spec.DefaultValue(); ok {
			return def, nil
		}
		if spec.Required() {
			return model.Value{}, newValidationError(key, "", "a value is required")
		}
		return zeroValue(spec, key)
	}

	switch p := spec.(type) {
	case model.StringParam:
		return model.StringValue(text), nil

	case model.IntegerParam:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return model.Value{}, newValidationError(key, text, "expected an integer")
		}
		return model.IntegerValue(n), nil

	case model.FloatParam:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return model.Value{}, newValidationError(key, text, "expected a number")
		}
		return model.FloatValue(f), nil

	case model.BooleanParam:
		b, ok := parseBool(text)
		if !ok {
			return model.Value{}, newValidationError(key, text, "expected yes or no")
		}
		return model.BooleanValue(b), nil

	case model.SelectParam:
		if !slices.Contains(p.Values, text) {
			return model.Value{}, newValidationError(key, text, "must be one of: "+strings.Join(p.Values, ", "))
		}
		return model.StringValue(text), nil

	case model.MultiSelectParam:
		return coerceChoices(p, ans.Choices, text)

	default:
		return model.Value{}, newValidationError(key, text, fmt.Sprintf("unsupported parameter type %s", spec.Kind()))
	}
}

func isEmptyAnswer(spec model.ParameterSpec, text string, choices []string) bool {
	if spec.Kind() == model.KindMultiSelect {
		return choices == nil && text == ""
	}
	return text == ""
}

func zeroValue(spec model.ParameterSpec, key string) (model.Value, *ValidationError) {
	switch spec.Kind() {
	case model.KindInteger:
		return model.IntegerValue(0), nil
	case model.KindFloat:
		return model.FloatValue(0), nil
	case model.KindBoolean:
		return model.BooleanValue(false), nil
	case model.KindSelect:
		return model.Value{}, newValidationError(key, "", "a choice is required")
	case model.KindMultiSelect:
		return model.ListValue(nil), nil
	default:
		return model.StringValue(""), nil
	}
}

// coerceChoices validates a multiselect answer. Text is a comma separated
// fallback used when Choices is empty. The result follows the declared order.
func coerceChoices(p model.MultiSelectParam, choices []string, text string) (model.Value, *ValidationError) {
	if len(choices) == 0 {
		choices = strings.Split(text, ",")
	}

	picked := make(map[string]bool, len(choices))
	for _, c := range choices {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if !slices.Contains(p.Values, c) {
			return model.Value{}, newValidationError(p.Key(), c, "must be one of: "+strings.Join(p.Values, ", "))
		}
		picked[c] = true
	}

	if len(picked) == 0 && p.Required() {
		return model.Value{}, newValidationError(p.Key(), "", "select at least one value")
	}

	out := make([]string, 0, len(picked))
	for _, v := range p.Values {
		if picked[v] {
			out = append(out, v)
		}
	}
	return model.ListValue(out), nil
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "y", "yes", "true", "t", "1", "on":
		return true, true
	case "n", "no", "false", "f", "0", "off":
		return false, true
	default:
		return false, false
	}
}

// answerFromOverride turns a decoded override (string, number, bool or list)
// into an Answer. An empty string given for a multiselect is an explicit empty
// selection.
func answerFromOverride(spec model.ParameterSpec, raw any) Answer {
	switch v := raw.(type) {
	case string:
		if spec.Kind() == model.KindMultiSelect && strings.TrimSpace(v) == "" {
			return Answer{Choices: []string{}}
		}
		return Answer{Text: v}
	case []string:
		return Answer{Choices: v}
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, fmt.Sprint(item))
		}
		return Answer{Choices: items}
	case model.Value:
		if v.Kind() == model.ValueList {
			return Answer{Choices: v.List()}
		}
		return Answer{Text: v.String()}
	default:
		return Answer{Text: fmt.Sprint(v)}
	}
}
