package config

// Config represents the global scaffold configuration.
type Config struct {
	// Git configuration for cloning remote templates.
	Git GitConfig `json:"git"`
	// Templates configuration for template processing.
	Templates TemplateConfig `json:"templates"`
	// Output configuration for display and logging.
	Output OutputConfig `json:"output"`
	// Defaults configuration for default values.
	Defaults DefaultsConfig `json:"defaults"`
}

// GitConfig represents repository access settings.
type GitConfig struct {
	// DefaultRef is the branch cloned when a location names none.
	// Empty means the remote HEAD.
	DefaultRef string `json:"default_ref"`
	// SSHKey is the private key used for SSH URLs.
	SSHKey string `json:"ssh_key"`
	// SSHUser is the SSH user for URLs that do not name one. Empty means "git".
	SSHUser string `json:"ssh_user"`
	// Token is a GitHub token for private HTTPS repositories.
	Token string `json:"token,omitempty"`
	// Timeout is the clone timeout in seconds (0 = no timeout).
	Timeout int `json:"timeout"`
}

// TemplateConfig represents template processing settings.
type TemplateConfig struct {
	// PreserveExecutable preserves executable permissions from templates.
	PreserveExecutable bool `json:"preserve_executable"`
	// IgnorePatterns are exclusion patterns applied to every template.
	IgnorePatterns []string `json:"ignore_patterns"`
	// BinaryExtensions are file extensions copied without rendering.
	BinaryExtensions []string `json:"binary_extensions"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `json:"color"`
	// Quiet suppresses non-error output.
	Quiet bool `json:"quiet"`
}

// DefaultsConfig represents default values for command flags.
type DefaultsConfig struct {
	// TargetDir is the directory projects are generated under.
	TargetDir string `json:"target_dir"`
}
