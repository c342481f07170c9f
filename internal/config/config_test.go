package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.Git.DefaultRef != "" {
		t.Errorf("Expected empty DefaultRef (remote HEAD), got %s", cfg.Git.DefaultRef)
	}
	if cfg.Git.SSHUser != "" {
		t.Errorf("Expected empty SSHUser so the URL user applies, got %s", cfg.Git.SSHUser)
	}
	if !cfg.Templates.PreserveExecutable {
		t.Error("PreserveExecutable should be true by default")
	}
	if !cfg.Output.Color {
		t.Error("Color output should be enabled by default")
	}
	if cfg.Defaults.TargetDir != "." {
		t.Errorf("Expected TargetDir=., got %s", cfg.Defaults.TargetDir)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Default configuration should validate: %v", err)
	}
}

func TestDefaultBinaryExtensions(t *testing.T) {
	exts := DefaultConfig().Templates.BinaryExtensions
	for _, ext := range []string{".png", ".jpg", ".pdf", ".zip", ".exe"} {
		assert.Contains(t, exts, ext)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "scaffold", "config.json"), DefaultConfigPath())

	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "scaffold", "config.json"), DefaultConfigPath())
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
  // user overrides
  "git": {"default_ref": "develop", "ssh_key": "~/.ssh/work"},
  "templates": {"preserve_executable": false, "binary_extensions": [".PSD"]},
  /* block comment */
  "output": {"quiet": true}
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.Git.DefaultRef)
	assert.Equal(t, "~/.ssh/work", cfg.Git.SSHKey)
	assert.Equal(t, 120, cfg.Git.Timeout, "unset fields keep defaults")
	assert.Empty(t, cfg.Git.SSHUser, "unset ssh_user leaves the URL user in charge")
	assert.False(t, cfg.Templates.PreserveExecutable, "explicit false is honored")
	assert.Equal(t, []string{".psd"}, cfg.Templates.BinaryExtensions, "extensions are lower-cased")
	assert.Equal(t, DefaultIgnorePatterns(), cfg.Templates.IgnorePatterns)
	assert.True(t, cfg.Output.Quiet)
	assert.True(t, cfg.Output.Color)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		content   string
		wantType  ConfigErrorType
		wantField string
	}{
		{"invalid JSON", `{"git": `, ConfigInvalid, ""},
		{"unknown field", `{"cache": {"enabled": true}}`, ConfigInvalid, ""},
		{"wrong type", `{"git": {"timeout": "soon"}}`, ConfigInvalid, ""},
		{"negative timeout", `{"git": {"timeout": -1}}`, ConfigValidationFailed, "git.timeout"},
		{"empty target dir", `{"defaults": {"target_dir": ""}}`, ConfigValidationFailed, "defaults.target_dir"},
		{"blank target dir", `{"defaults": {"target_dir": "  "}}`, ConfigValidationFailed, "defaults.target_dir"},
		{"bad ref", `{"git": {"default_ref": "a b"}}`, ConfigValidationFailed, "git.default_ref"},
		{"bad pattern", `{"templates": {"ignore_patterns": ["[x"]}}`, ConfigValidationFailed, "templates.ignore_patterns[0]"},
		{"empty pattern", `{"templates": {"ignore_patterns": ["*.log", ""]}}`, ConfigValidationFailed, "templates.ignore_patterns[1]"},
		{"extension without dot", `{"templates": {"binary_extensions": ["png"]}}`, ConfigValidationFailed, "templates.binary_extensions[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := NewLoader().Load(path)
			require.Error(t, err)
			cfgErr, ok := err.(*ConfigError)
			require.True(t, ok, "expected *ConfigError, got %T", err)
			assert.Equal(t, tt.wantType, cfgErr.Type)
			assert.Equal(t, tt.wantField, cfgErr.Field)
			assert.Equal(t, path, cfgErr.File)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")

	_, err := NewLoader().Load(missing)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	cfg, err := NewLoader().LoadOrDefault(missing)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = NewLoader().LoadOrDefault(bad)
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
}

func TestConfigError_Format(t *testing.T) {
	err := NewConfigErrorWithField(ConfigValidationFailed, "/tmp/c.json", "git.timeout", "timeout cannot be negative")
	assert.Equal(t, "configuration error in /tmp/c.json [field: git.timeout]: timeout cannot be negative", err.Error())

	err = NewConfigError(ConfigInvalid, "/tmp/c.json", "broken")
	assert.Equal(t, "configuration error in /tmp/c.json: broken", err.Error())

	err = NewConfigErrorWithCause(ConfigInvalid, "", "invalid JSON", errors.New("unexpected EOF"))
	assert.Equal(t, "configuration error: invalid JSON: unexpected EOF", err.Error())
	assert.Equal(t, "invalid", err.Type.String())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = ExpandPath("~/projects")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "projects"), got)

	got, err = ExpandPath("")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = ExpandPath("relative")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}
