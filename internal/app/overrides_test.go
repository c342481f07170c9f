package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/scaffold/internal/template/params"
)

func TestParseSetFlags(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    params.Overrides
		wantErr bool
	}{
		{"single", []string{"feature=auth"}, params.Overrides{"feature": "auth"}, false},
		{"value with equals", []string{"expr=a=b"}, params.Overrides{"expr": "a=b"}, false},
		{"empty value", []string{"description="}, params.Overrides{"description": ""}, false},
		{"later wins", []string{"x=1", "x=2"}, params.Overrides{"x": "2"}, false},
		{"key is trimmed", []string{" x =1"}, params.Overrides{"x": "1"}, false},
		{"missing equals", []string{"feature"}, nil, true},
		{"empty key", []string{"=v"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSetFlags(tt.pairs)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ExitValidation, ExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadValuesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "values.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
feature: auth
port: 8080
ratio: 0.5
show_description: true
components: [api, web]
`), 0644))

	got, err := LoadValuesFile(path)
	require.NoError(t, err)
	assert.Equal(t, "auth", got["feature"])
	assert.Equal(t, 8080, got["port"])
	assert.Equal(t, 0.5, got["ratio"])
	assert.Equal(t, true, got["show_description"])
	assert.Equal(t, []any{"api", "web"}, got["components"])

	nested := filepath.Join(dir, "nested.yaml")
	require.NoError(t, os.WriteFile(nested, []byte("db:\n  host: x\n"), 0644))
	_, err = LoadValuesFile(nested)
	require.Error(t, err)
	assert.Equal(t, ExitValidation, ExitCode(err))

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("a: [unclosed"), 0644))
	_, err = LoadValuesFile(broken)
	require.Error(t, err)

	_, err = LoadValuesFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestMergeOverrides(t *testing.T) {
	fromFile := params.Overrides{"a": "file", "b": "file"}
	fromFlags := params.Overrides{"b": "flag"}

	got := MergeOverrides(fromFile, fromFlags, nil)
	assert.Equal(t, params.Overrides{"a": "file", "b": "flag"}, got)
	assert.Equal(t, "file", fromFile["b"], "inputs are not modified")
}

func TestResolveFileReferences(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "desc.md"), []byte("long text\n"), 0644))

	overrides := params.Overrides{"description": "@file:desc.md", "plain": "x", "count": 3}
	require.NoError(t, ResolveFileReferences(overrides, dir))
	assert.Equal(t, "long text\n", overrides["description"])
	assert.Equal(t, "x", overrides["plain"])
	assert.Equal(t, 3, overrides["count"])

	for name, ref := range map[string]string{
		"escapes base": "@file:../outside.txt",
		"no filename":  "@file:",
		"missing file": "@file:nope.txt",
	} {
		t.Run(name, func(t *testing.T) {
			err := ResolveFileReferences(params.Overrides{"v": ref}, dir)
			require.Error(t, err)
			assert.Equal(t, ExitValidation, ExitCode(err))
		})
	}
}
