package descriptor

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/tacogips/scaffold/internal/template/model"
)

func validateExclude(patterns []string) error {
	for i, p := range patterns {
		if strings.TrimSpace(p) == "" {
			return newSchemaError(fmt.Sprintf("template.exclude[%d]", i), "empty pattern")
		}
		if !doublestar.ValidatePattern(p) {
			return newSchemaError(fmt.Sprintf("template.exclude[%d]", i), fmt.Sprintf("invalid glob pattern %q", p))
		}
	}
	return nil
}

// buildParameter validates one raw parameter table and converts it to its kind's spec.
func buildParameter(key string, rp rawParameter, md toml.MetaData) (model.ParameterSpec, error) {
	field := "parameters." + key

	if model.IsReservedKey(key) {
		return nil, newSchemaError(field, fmt.Sprintf("%q is reserved and cannot be declared as a parameter", key))
	}
	if !md.IsDefined("parameters", key, "type") {
		return nil, newSchemaError(field+".type", "missing type")
	}
	kind := model.ParamKind(rp.Type)
	if !kind.Valid() {
		return nil, newSchemaError(field+".type", fmt.Sprintf("unknown type %q (expected one of %s)", rp.Type, kindList()))
	}
	if !md.IsDefined("parameters", key, "message") {
		return nil, newSchemaError(field+".message", "missing message")
	}

	base := model.ParamBase{Name: key, Prompt: rp.Message, IsRequired: rp.Required}
	hasDefault := md.IsDefined("parameters", key, "default")
	hasValues := md.IsDefined("parameters", key, "values")

	if hasValues && kind != model.KindSelect && kind != model.KindMultiSelect {
		return nil, newSchemaError(field+".values", fmt.Sprintf("values are not allowed for type %s", kind))
	}

	switch kind {
	case model.KindString:
		p := model.StringParam{ParamBase: base}
		if hasDefault {
			s, ok := rp.Default.(string)
			if !ok {
				return nil, wrongDefault(field, kind, rp.Default)
			}
			p.Default = &s
		}
		return p, nil

	case model.KindInteger:
		p := model.IntegerParam{ParamBase: base}
		if hasDefault {
			n, ok := toInt(rp.Default)
			if !ok {
				return nil, wrongDefault(field, kind, rp.Default)
			}
			p.Default = &n
		}
		return p, nil

	case model.KindFloat:
		p := model.FloatParam{ParamBase: base}
		if hasDefault {
			f, ok := toFloat(rp.Default)
			if !ok {
				return nil, wrongDefault(field, kind, rp.Default)
			}
			p.Default = &f
		}
		return p, nil

	case model.KindBoolean:
		p := model.BooleanParam{ParamBase: base}
		if hasDefault {
			b, ok := toBool(rp.Default)
			if !ok {
				return nil, wrongDefault(field, kind, rp.Default)
			}
			p.Default = &b
		}
		return p, nil

	case model.KindSelect:
		values, err := choiceValues(field, rp.Values, hasValues)
		if err != nil {
			return nil, err
		}
		p := model.SelectParam{ParamBase: base, Values: values}
		if hasDefault {
			s, ok := rp.Default.(string)
			if !ok {
				return nil, wrongDefault(field, kind, rp.Default)
			}
			if !slices.Contains(values, s) {
				return nil, newSchemaError(field+".default", fmt.Sprintf("default %q is not one of the allowed values", s))
			}
			p.Default = &s
		}
		return p, nil

	default: // model.KindMultiSelect
		values, err := choiceValues(field, rp.Values, hasValues)
		if err != nil {
			return nil, err
		}
		p := model.MultiSelectParam{ParamBase: base, Values: values}
		if hasDefault {
			items, ok := toStrings(rp.Default)
			if !ok {
				return nil, wrongDefault(field, kind, rp.Default)
			}
			for _, item := range items {
				if !slices.Contains(values, item) {
					return nil, newSchemaError(field+".default", fmt.Sprintf("default %q is not one of the allowed values", item))
				}
			}
			p.Default = items
		}
		return p, nil
	}
}

func choiceValues(field string, raw any, defined bool) ([]string, error) {
	if !defined {
		return nil, newSchemaError(field+".values", "select parameters require values")
	}
	values, ok := toStrings(raw)
	if !ok {
		return nil, newSchemaError(field+".values", "values must be an array of strings")
	}
	if len(values) == 0 {
		return nil, newSchemaError(field+".values", "values must not be empty")
	}
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if v == "" {
			return nil, newSchemaError(field+".values", "values must not contain empty strings")
		}
		if seen[v] {
			return nil, newSchemaError(field+".values", fmt.Sprintf("duplicate value %q", v))
		}
		seen[v] = true
	}
	return values, nil
}

func wrongDefault(field string, kind model.ParamKind, v any) *DescriptorError {
	return newSchemaError(field+".default", fmt.Sprintf("default %v (%T) is not a valid %s", v, v, kind))
}

func kindList() string {
	names := make([]string, len(model.ParamKinds))
	for i, k := range model.ParamKinds {
		names[i] = string(k)
	}
	return strings.Join(names, "|")
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return parsed, err == nil
	default:
		return false, false
	}
}

// toStrings accepts a TOML array whose elements are all strings.
func toStrings(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
