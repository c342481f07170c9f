package provider

import (
	"fmt"
	"os"
	"strings"

	"github.com/tacogips/scaffold/internal/debug"
)

// NewProvider selects the provider for a location: an existing local
// directory uses the local provider, git-looking locations use the git
// provider, and anything else is treated as a (missing) local path.
func NewProvider(location string, opts GitOptions) (Provider, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("template location cannot be empty")
	}

	if IsLocalPath(location) {
		debug.Debug("[provider] Using local provider for %s", location)
		return NewLocalProvider(), nil
	}
	if IsGitURL(location) {
		debug.Debug("[provider] Using git provider for %s", location)
		return NewGitProvider(opts), nil
	}

	debug.Debug("[provider] %s is neither a directory nor a git URL, treating as local path", location)
	return NewLocalProvider(), nil
}

// GetGitHubTokenFromEnv retrieves the GitHub token from environment variables.
// Checks GITHUB_TOKEN first, then falls back to GH_TOKEN.
func GetGitHubTokenFromEnv() string {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}
	return os.Getenv("GH_TOKEN")
}
