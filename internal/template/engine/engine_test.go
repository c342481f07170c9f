package engine

import (
	"errors"
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/scaffold/internal/template/model"
)

func testContext() model.Context {
	return model.NewContext(map[string]model.Value{
		model.KeyName:      model.StringValue("My Project"),
		"feature":          model.StringValue("auth"),
		"show_description": model.BooleanValue(true),
		"description":      model.StringValue("login flow"),
		"count":            model.IntegerValue(5),
		"ratio":            model.FloatValue(2),
		"targets":          model.ListValue([]string{"linux", "darwin"}),
	})
}

func TestRender(t *testing.T) {
	e := New()
	ctx := testContext()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain text", "hello", "hello"},
		{"variable", "{{.feature}}", "auth"},
		{"conditional on", "{{if .show_description}}D: {{.description}}{{end}}", "D: login flow"},
		{"kebab", "{{kebab .name}}", "my-project"},
		{"snake", "{{snake .name}}", "my_project"},
		{"camel", "{{camel .name}}", "MyProject"},
		{"lowerCamel", "{{lowerCamel .name}}", "myProject"},
		{"screamingSnake", "{{screamingSnake .name}}", "MY_PROJECT"},
		{"upper", "{{upper .feature}}", "AUTH"},
		{"title", "{{title \"hello big world\"}}", "Hello Big World"},
		{"replace in pipeline", "{{.feature | replace \"a\" \"o\"}}", "outh"},
		{"join", "{{join \",\" .targets}}", "linux,darwin"},
		{"has", "{{if has .targets \"linux\"}}yes{{end}}{{if has .targets \"windows\"}}no{{end}}", "yes"},
		{"range over list", "{{range .targets}}[{{.}}]{{end}}", "[linux][darwin]"},
		{"integer", "{{.count}}", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Render(tt.name, tt.text, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_ConditionalOff(t *testing.T) {
	ctx := model.NewContext(map[string]model.Value{
		"show_description": model.BooleanValue(false),
		"description":      model.StringValue("login flow"),
	})
	got, err := New().Render("readme", "A{{if .show_description}}\n{{.description}}{{end}}B", ctx)
	require.NoError(t, err)
	assert.Equal(t, "AB", got)
}

func TestRender_ForRange(t *testing.T) {
	got, err := New().Render("repeat", "{{range $i := forRange .count}}X{{$i}};{{end}}", testContext())
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(got, "X"))
	assert.Equal(t, "X0;X1;X2;X3;X4;", got)

	got, err = New().Render("literal", "{{range forRange 3}}X{{end}}", testContext())
	require.NoError(t, err)
	assert.Equal(t, "XXX", got)

	got, err = New().Render("float", "{{range forRange .ratio}}X{{end}}", testContext())
	require.NoError(t, err)
	assert.Equal(t, "XX", got)

	got, err = New().Render("zero", "{{range forRange 0}}X{{end}}", testContext())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestForRange_Invalid(t *testing.T) {
	_, err := forRange(-1)
	assert.Error(t, err)
	_, err = forRange(1.5)
	assert.Error(t, err)
	_, err = forRange("5")
	assert.Error(t, err)
}

func TestRender_Errors(t *testing.T) {
	e := New()

	_, err := e.Render("missing.txt", "{{.nope}}", testContext())
	require.Error(t, err)
	var re *RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, RenderExecuteFailed, re.Type)
	assert.Equal(t, "missing.txt", re.Template)

	_, err = e.Render("broken.txt", "{{if .feature}}", testContext())
	require.True(t, errors.As(err, &re))
	assert.Equal(t, RenderParseFailed, re.Type)
	assert.Contains(t, err.Error(), "broken.txt")
}

func TestWithFuncs(t *testing.T) {
	e := New(WithFuncs(template.FuncMap{
		"shout": func(s string) string { return s + "!" },
	}))
	got, err := e.Render("custom", "{{shout .feature}}", testContext())
	require.NoError(t, err)
	assert.Equal(t, "auth!", got)
}

func TestHasActions(t *testing.T) {
	assert.True(t, HasActions("{{.name}}"))
	assert.False(t, HasActions("plain.txt"))
}
