package config

import (
	"os"
	"path/filepath"

	"github.com/tacogips/scaffold/internal/template/generator"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Git: GitConfig{
			Timeout: 120,
		},
		Templates: TemplateConfig{
			PreserveExecutable: true,
			IgnorePatterns:     DefaultIgnorePatterns(),
			BinaryExtensions:   generator.DefaultBinaryExtensions(),
		},
		Output: OutputConfig{
			Color: true,
		},
		Defaults: DefaultsConfig{
			TargetDir: ".",
		},
	}
}

// DefaultIgnorePatterns returns the default ignore patterns.
func DefaultIgnorePatterns() []string {
	return []string{
		".DS_Store",
		"Thumbs.db",
		"*.swp",
		"*.swo",
		"*~",
	}
}

// DefaultConfigPath returns the default configuration file path, honoring
// XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "scaffold", "config.json")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "scaffold", "config.json")
}
