package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tacogips/scaffold/internal/debug"
	"github.com/tacogips/scaffold/internal/template/params"
)

// fileRefPrefix marks an override whose value is read from a file.
const fileRefPrefix = "@file:"

// ParseSetFlags parses repeated "key=value" flags into overrides. Values stay
// strings; they are coerced against the parameter kind when collected.
func ParseSetFlags(pairs []string) (params.Overrides, error) {
	out := make(params.Overrides, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, NewValidationError(fmt.Sprintf("invalid --set value %q, expected key=value", pair), nil)
		}
		out[key] = value
	}
	return out, nil
}

// LoadValuesFile reads override values from a YAML mapping. Values may be
// scalars or lists of strings.
func LoadValuesFile(path string) (params.Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("failed to read values file %s", path), err)
	}

	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid YAML in values file %s", path), err)
	}

	out := make(params.Overrides, len(raw))
	for key, value := range raw {
		switch value.(type) {
		case map[string]any, nil:
			return nil, NewValidationError(
				fmt.Sprintf("values file %s: %s must be a scalar or a list", path, key), nil)
		}
		out[key] = value
	}
	debug.Debug("[app] Loaded %d values from %s", len(out), path)
	return out, nil
}

// MergeOverrides merges layers in order; later layers win.
func MergeOverrides(layers ...params.Overrides) params.Overrides {
	out := make(params.Overrides)
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}

// ResolveFileReferences replaces string values of the form "@file:<path>"
// with the content of that file, resolved relative to baseDir. Paths may not
// leave baseDir.
func ResolveFileReferences(overrides params.Overrides, baseDir string) error {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return NewValidationError("failed to resolve base directory", err)
	}

	for name, value := range overrides {
		s, ok := value.(string)
		if !ok || !strings.HasPrefix(s, fileRefPrefix) {
			continue
		}

		filename := strings.TrimSpace(strings.TrimPrefix(s, fileRefPrefix))
		if filename == "" {
			return NewValidationError(fmt.Sprintf("value %s: %s prefix without filename", name, fileRefPrefix), nil)
		}

		filePath := filepath.Join(absBase, filename)
		rel, err := filepath.Rel(absBase, filePath)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return NewValidationError(fmt.Sprintf("value %s: %s path must stay within %s", name, fileRefPrefix, absBase), nil)
		}

		content, err := os.ReadFile(filePath)
		if err != nil {
			return NewValidationError(fmt.Sprintf("value %s: failed to read %s%s", name, fileRefPrefix, filename), err)
		}
		overrides[name] = string(content)
		debug.Debug("[app] Value '%s': file content loaded (%d bytes)", name, len(content))
	}
	return nil
}
