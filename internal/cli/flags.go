package cli

// Flag names and descriptions
const (
	// Global flags
	FlagConfig  = "config"
	FlagDebug   = "debug"
	FlagNoColor = "no-color"
	FlagQuiet   = "quiet"

	// Generate flags
	FlagName         = "name"
	FlagForce        = "force"
	FlagAppend       = "append"
	FlagTargetDir    = "target-directory"
	FlagPassphrase   = "passphrase"
	FlagRef          = "ref"
	FlagSet          = "set"
	FlagValues       = "values"
	FlagNoPrompt     = "no-prompt"
	FlagSkipExisting = "skip-existing"
	FlagDryRun       = "dry-run"
	FlagVerbose      = "verbose"

	DescConfig  = "Path to config file (default ~/.config/scaffold/config.json)"
	DescDebug   = "Enable debug logging"
	DescNoColor = "Disable colored output"
	DescQuiet   = "Suppress non-error output"

	DescName         = "Project name (the project directory is its kebab-case form)"
	DescForce        = "Replace an existing project directory"
	DescAppend       = "Generate directly into the target directory, keeping unrelated files"
	DescTargetDir    = "Directory to generate the project in"
	DescPassphrase   = "Ask for the SSH key passphrase before cloning"
	DescRef          = "Git branch to clone"
	DescSet          = "Set a parameter value (key=value, repeatable; @file:path reads a file)"
	DescValues       = "YAML file with parameter values"
	DescNoPrompt     = "Never prompt; use defaults and fail on missing required values"
	DescSkipExisting = "Keep existing files instead of overwriting them (with --append or --force)"
	DescDryRun       = "Show what would be generated without writing anything"
	DescVerbose      = "List every generated entry"
)
