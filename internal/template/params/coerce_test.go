package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/scaffold/internal/template/model"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		spec    model.ParameterSpec
		answer  Answer
		want    model.Value
		wantErr string
	}{
		{"string", model.StringParam{ParamBase: base("s", false)}, Answer{Text: " auth "}, model.StringValue("auth"), ""},
		{"optional empty string", model.StringParam{ParamBase: base("s", false)}, Answer{}, model.StringValue(""), ""},
		{"integer", model.IntegerParam{ParamBase: base("i", false)}, Answer{Text: "-12"}, model.IntegerValue(-12), ""},
		{"integer invalid", model.IntegerParam{ParamBase: base("i", false)}, Answer{Text: "1.5"}, model.Value{}, "expected an integer"},
		{"optional empty integer", model.IntegerParam{ParamBase: base("i", false)}, Answer{}, model.IntegerValue(0), ""},
		{"float", model.FloatParam{ParamBase: base("f", false)}, Answer{Text: "0.25"}, model.FloatValue(0.25), ""},
		{"float invalid", model.FloatParam{ParamBase: base("f", false)}, Answer{Text: "abc"}, model.Value{}, "expected a number"},
		{"boolean yes", model.BooleanParam{ParamBase: base("b", false)}, Answer{Text: "Yes"}, model.BooleanValue(true), ""},
		{"boolean false", model.BooleanParam{ParamBase: base("b", false)}, Answer{Text: "false"}, model.BooleanValue(false), ""},
		{"boolean invalid", model.BooleanParam{ParamBase: base("b", false)}, Answer{Text: "maybe"}, model.Value{}, "expected yes or no"},
		{"select member", model.SelectParam{ParamBase: base("l", false), Values: []string{"MIT"}}, Answer{Text: "MIT"}, model.StringValue("MIT"), ""},
		{"select non-member", model.SelectParam{ParamBase: base("l", false), Values: []string{"MIT"}}, Answer{Text: "GPL"}, model.Value{}, "must be one of: MIT"},
		{"select empty without default", model.SelectParam{ParamBase: base("l", false), Values: []string{"MIT"}}, Answer{}, model.Value{}, "a choice is required"},
		{"multiselect no answer takes default", model.MultiSelectParam{ParamBase: base("m", false), Values: []string{"a", "b"}, Default: []string{"a"}}, Answer{}, model.ListValue([]string{"a"}), ""},
		{"multiselect explicit empty beats default", model.MultiSelectParam{ParamBase: base("m", false), Values: []string{"a", "b"}, Default: []string{"a"}}, Answer{Choices: []string{}}, model.ListValue(nil), ""},
		{"required multiselect explicit empty", model.MultiSelectParam{ParamBase: base("m", true), Values: []string{"a"}, Default: []string{"a"}}, Answer{Choices: []string{}}, model.Value{}, "select at least one value"},
		{"multiselect text fallback", model.MultiSelectParam{ParamBase: base("m", false), Values: []string{"a", "b"}}, Answer{Text: "b,a"}, model.ListValue([]string{"a", "b"}), ""},
		{"list for scalar", model.StringParam{ParamBase: base("s", false)}, Answer{Choices: []string{"x"}}, model.Value{}, "expected a single value"},
		{"required empty", model.StringParam{ParamBase: base("s", true)}, Answer{Text: "  "}, model.Value{}, "a value is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, verr := Coerce(tt.spec, tt.answer)
			if tt.wantErr != "" {
				require.NotNil(t, verr)
				assert.Equal(t, tt.spec.Key(), verr.Key)
				assert.Contains(t, verr.Error(), tt.wantErr)
				return
			}
			require.Nil(t, verr)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestAnswerFromOverride(t *testing.T) {
	str := model.StringParam{ParamBase: base("s", false)}
	multi := model.MultiSelectParam{ParamBase: base("m", false), Values: []string{"a", "b"}}

	assert.Equal(t, Answer{Text: "x"}, answerFromOverride(str, "x"))
	assert.Equal(t, Answer{Text: "42"}, answerFromOverride(str, 42))
	assert.Equal(t, Answer{Text: "true"}, answerFromOverride(str, true))
	assert.Equal(t, Answer{Text: ""}, answerFromOverride(str, ""))
	assert.Equal(t, Answer{Choices: []string{"a", "b"}}, answerFromOverride(multi, []any{"a", "b"}))
	assert.Equal(t, Answer{Choices: []string{"a"}}, answerFromOverride(multi, model.ListValue([]string{"a"})))
	assert.Equal(t, Answer{Text: "a,b"}, answerFromOverride(multi, "a,b"))

	empty := answerFromOverride(multi, " ")
	assert.NotNil(t, empty.Choices)
	assert.Empty(t, empty.Choices)
}

func TestBuildContext(t *testing.T) {
	values := map[string]model.Value{
		"feature":          model.StringValue("auth"),
		"show_description": model.BooleanValue(true),
	}
	overrides := Overrides{
		"feature":     "ignored-because-declared",
		"description": "login flow",
		"name":        "from-override",
		"retries":     3,
	}

	ctx, err := BuildContext(values, "demo", "/tmp/out", overrides)
	require.NoError(t, err)

	assert.Equal(t, "demo", ctx.Name())
	dir, _ := ctx.Get(model.KeyTargetDir)
	assert.Equal(t, "/tmp/out", dir.Str())
	feature, _ := ctx.Get("feature")
	assert.Equal(t, "auth", feature.Str())
	desc, ok := ctx.Get("description")
	require.True(t, ok)
	assert.Equal(t, "login flow", desc.Str())
	retries, _ := ctx.Get("retries")
	assert.Equal(t, int64(3), retries.Int())
	assert.Equal(t, []string{"description", "feature", "name", "retries", "show_description", "target_dir"}, ctx.Keys())
}

func TestBuildContext_Errors(t *testing.T) {
	_, err := BuildContext(nil, " ", "/tmp", nil)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = BuildContext(nil, "demo", "/tmp", Overrides{"nested": map[string]any{"a": 1}})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "nested", ve.Key)
}
