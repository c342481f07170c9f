package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/scaffold/internal/app"
	"github.com/tacogips/scaffold/internal/build"
)

// runCLI runs the command line with an isolated config directory and a
// non-interactive stdin.
func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(""), &out, &errOut)
	return code, out.String(), errOut.String()
}

func fixture(t *testing.T, name string) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("testdata", "templates", name))
	require.NoError(t, err)
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func generateArgs(t *testing.T, target string, extra ...string) []string {
	args := []string{fixture(t, "go-service"),
		"--name", "Billing API",
		"-d", target,
		"--set", "module_path=example.com/billing",
		"--no-color",
	}
	return append(args, extra...)
}

func TestRoot_GeneratesByDefault(t *testing.T) {
	target := t.TempDir()
	code, stdout, stderr := runCLI(t, generateArgs(t, target)...)
	require.Equal(t, app.ExitOK, code, "stderr: %s", stderr)

	project := filepath.Join(target, "billing-api")
	assert.Equal(t, "module example.com/billing\n\ngo 1.25\n", readFile(t, filepath.Join(project, "go.mod")))
	assert.Contains(t, readFile(t, filepath.Join(project, "cmd", "billing-api", "main.go")), `":8080"`)
	assert.NotContains(t, readFile(t, filepath.Join(project, "README.md")), "docker build")
	assert.NoFileExists(t, filepath.Join(project, "debug.log"))
	assert.NoFileExists(t, filepath.Join(project, ".scaffold.toml"))

	assert.Contains(t, stdout, "Project generated")
	assert.Contains(t, stdout, "cd billing-api")
	assert.Contains(t, stdout, "go run ./cmd/billing-api")
}

func TestGenerate_Subcommand(t *testing.T) {
	target := t.TempDir()
	valuesDir := t.TempDir()
	values := filepath.Join(valuesDir, "answers.yaml")
	require.NoError(t, os.WriteFile(values, []byte("module_path: example.com/from-file\nport: 9090\nwith_docker: true\n"), 0644))

	args := append([]string{"generate"}, generateArgs(t, target, "--values", values, "--set", "go_version=1.24")...)
	code, _, stderr := runCLI(t, args...)
	require.Equal(t, app.ExitOK, code, "stderr: %s", stderr)

	project := filepath.Join(target, "billing-api")
	assert.Equal(t, "module example.com/billing\n\ngo 1.24\n", readFile(t, filepath.Join(project, "go.mod")),
		"--set wins over the values file")
	assert.Contains(t, readFile(t, filepath.Join(project, "cmd", "billing-api", "main.go")), `":9090"`)
	assert.Contains(t, readFile(t, filepath.Join(project, "README.md")), "docker build -t billing-api .")
}

func TestGenerate_DestinationPolicies(t *testing.T) {
	target := t.TempDir()
	code, _, _ := runCLI(t, generateArgs(t, target)...)
	require.Equal(t, app.ExitOK, code)

	extra := filepath.Join(target, "billing-api", "extra.txt")
	require.NoError(t, os.WriteFile(extra, []byte("mine"), 0644))

	code, _, stderr := runCLI(t, generateArgs(t, target)...)
	assert.Equal(t, app.ExitCollision, code)
	assert.Contains(t, stderr, "Error:")
	assert.FileExists(t, extra, "a collision writes nothing")

	code, _, stderr = runCLI(t, generateArgs(t, target, "--force")...)
	require.Equal(t, app.ExitOK, code, "stderr: %s", stderr)
	assert.NoFileExists(t, extra, "force replaces the project directory")

	code, _, stderr = runCLI(t, generateArgs(t, target, "--append")...)
	require.Equal(t, app.ExitOK, code, "stderr: %s", stderr)
	assert.FileExists(t, filepath.Join(target, "go.mod"), "append writes into the target directory")
	assert.FileExists(t, filepath.Join(target, "billing-api", "go.mod"))
}

func TestGenerate_SkipExisting(t *testing.T) {
	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "go.mod"), []byte("keep"), 0644))

	code, stdout, stderr := runCLI(t, generateArgs(t, target, "--append", "--skip-existing")...)
	require.Equal(t, app.ExitOK, code, "stderr: %s", stderr)
	assert.Equal(t, "keep", readFile(t, filepath.Join(target, "go.mod")))
	assert.Contains(t, stdout, "Skipped: 1")
}

func TestGenerate_DryRun(t *testing.T) {
	target := t.TempDir()
	code, stdout, stderr := runCLI(t, generateArgs(t, target, "--dry-run", "--verbose")...)
	require.Equal(t, app.ExitOK, code, "stderr: %s", stderr)

	assert.NoDirExists(t, filepath.Join(target, "billing-api"))
	assert.Contains(t, stdout, "Dry run")
	assert.Contains(t, stdout, "Nothing was written")
	assert.Contains(t, stdout, filepath.Join("billing-api", "go.mod"))
}

func TestGenerate_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T, target string) []string
		want int
	}{
		{
			name: "force with append",
			args: func(t *testing.T, target string) []string {
				return generateArgs(t, target, "--force", "--append")
			},
			want: app.ExitValidation,
		},
		{
			name: "skip existing without a mode",
			args: func(t *testing.T, target string) []string {
				return generateArgs(t, target, "--skip-existing")
			},
			want: app.ExitValidation,
		},
		{
			name: "missing required parameter",
			args: func(t *testing.T, target string) []string {
				return []string{fixture(t, "go-service"), "-n", "x", "-d", target, "--no-prompt"}
			},
			want: app.ExitValidation,
		},
		{
			name: "value outside select choices",
			args: func(t *testing.T, target string) []string {
				return generateArgs(t, target, "--set", "go_version=1.10")
			},
			want: app.ExitValidation,
		},
		{
			name: "malformed set flag",
			args: func(t *testing.T, target string) []string {
				return generateArgs(t, target, "--set", "novalue")
			},
			want: app.ExitValidation,
		},
		{
			name: "unknown flag",
			args: func(t *testing.T, target string) []string {
				return generateArgs(t, target, "--bogus")
			},
			want: app.ExitValidation,
		},
		{
			name: "missing template",
			args: func(t *testing.T, target string) []string {
				return []string{filepath.Join(target, "nope"), "-n", "x", "-d", target}
			},
			want: app.ExitSource,
		},
		{
			name: "explicit config not found",
			args: func(t *testing.T, target string) []string {
				return generateArgs(t, target, "--config", filepath.Join(target, "missing.json"))
			},
			want: app.ExitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := t.TempDir()
			code, _, stderr := runCLI(t, tt.args(t, target)...)
			assert.Equal(t, tt.want, code, "stderr: %s", stderr)
			assert.True(t, strings.HasPrefix(stderr, "Error: "), "stderr: %s", stderr)
		})
	}
}

func TestGenerate_ConfigFile(t *testing.T) {
	target := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	cfg := `{
  // generated projects go here
  "defaults": {"target_dir": "` + filepath.ToSlash(target) + `"},
  "output": {"quiet": true},
}`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	code, stdout, stderr := runCLI(t, fixture(t, "go-service"),
		"--config", cfgPath, "-n", "Billing API", "--set", "module_path=example.com/billing")
	require.Equal(t, app.ExitOK, code, "stderr: %s", stderr)
	assert.Empty(t, stdout)
	assert.FileExists(t, filepath.Join(target, "billing-api", "go.mod"))
}

func TestQuietStillReportsErrors(t *testing.T) {
	target := t.TempDir()
	code, stdout, stderr := runCLI(t, generateArgs(t, target, "-q", "--force", "--append")...)
	assert.Equal(t, app.ExitValidation, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "cannot be used together")
}

func TestRoot_NoArgsShowsHelp(t *testing.T) {
	code, stdout, _ := runCLI(t)
	assert.Equal(t, app.ExitOK, code)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "generate")
}

func TestVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "version", "--short")
	require.Equal(t, app.ExitOK, code)
	assert.Equal(t, build.Version()+"\n", stdout)

	code, stdout, _ = runCLI(t, "version", "--json")
	require.Equal(t, app.ExitOK, code)
	assert.Contains(t, stdout, `"version": "`+build.Version()+`"`)
}

func TestCheck(t *testing.T) {
	code, stdout, stderr := runCLI(t, "check", fixture(t, "go-service"), "--no-color")
	require.Equal(t, app.ExitOK, code, stderr)
	assert.Contains(t, stdout, "is valid")
	assert.Contains(t, stdout, "go-service v1.0.0 by scaffold")
	assert.Contains(t, stdout, "module_path (string) required")
	assert.Contains(t, stdout, "go_version (select) default=1.25")
	assert.Contains(t, stdout, "port (integer) default=8080")

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[template\n"), 0644))
	code, _, stderr = runCLI(t, "check", bad)
	assert.Equal(t, app.ExitValidation, code)
	assert.Contains(t, stderr, "invalid template descriptor")

	code, _, _ = runCLI(t, "check", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, app.ExitValidation, code)
}
