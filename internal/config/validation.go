package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate validates the global configuration.
func Validate(config *Config) error {
	if config == nil {
		return NewConfigError(ConfigValidationFailed, "", "configuration cannot be nil")
	}

	if config.Git.Timeout < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "git.timeout", "timeout cannot be negative")
	}
	if strings.ContainsAny(config.Git.DefaultRef, " \t~^:?*[\\") {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "git.default_ref",
			fmt.Sprintf("invalid branch name: %q", config.Git.DefaultRef))
	}

	if strings.TrimSpace(config.Defaults.TargetDir) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "defaults.target_dir", "target directory cannot be empty")
	}

	for i, pattern := range config.Templates.IgnorePatterns {
		if pattern == "" || !doublestar.ValidatePattern(strings.TrimPrefix(strings.TrimSuffix(pattern, "/"), "./")) {
			return NewConfigErrorWithField(ConfigValidationFailed, "",
				fmt.Sprintf("templates.ignore_patterns[%d]", i),
				fmt.Sprintf("invalid glob pattern: %q", pattern))
		}
	}

	for i, ext := range config.Templates.BinaryExtensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 || strings.ContainsAny(ext, "/\\") {
			return NewConfigErrorWithField(ConfigValidationFailed, "",
				fmt.Sprintf("templates.binary_extensions[%d]", i),
				fmt.Sprintf("extension must start with '.': %q", ext))
		}
		config.Templates.BinaryExtensions[i] = strings.ToLower(ext)
	}

	return nil
}
