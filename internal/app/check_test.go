package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/scaffold/internal/template/descriptor"
	"github.com/tacogips/scaffold/internal/template/model"
)

func TestCheck(t *testing.T) {
	dir := featureTemplateDir(t)
	file := filepath.Join(dir, model.DescriptorFile)

	for _, path := range []string{dir, file} {
		result, err := Check(CheckOptions{Path: path})
		require.NoError(t, err)
		assert.Equal(t, file, result.File)
		_, ok := result.Descriptor.Parameter("feature")
		assert.True(t, ok)
	}
}

func TestCheck_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[template]\n[parameters.name]\ntype = \"string\"\nmessage = \"n\"\n"), 0644))

	tests := []struct {
		name string
		path string
	}{
		{"missing path", filepath.Join(dir, "nope")},
		{"directory without descriptor", dir},
		{"schema violation", bad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Check(CheckOptions{Path: tt.path})
			require.Error(t, err)
			assert.Equal(t, ExitValidation, ExitCode(err))
		})
	}

	_, err := Check(CheckOptions{Path: bad})
	assert.True(t, descriptor.IsSchemaViolation(err))
}
