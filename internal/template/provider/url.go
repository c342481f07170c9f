package provider

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// scpLike matches the scp-style SSH syntax "user@host:path".
var scpLike = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z0-9.-]+:`)

// shorthandHosts are hosts accepted without a scheme ("github.com/owner/repo").
var shorthandHosts = []string{"github.com/", "gitlab.com/", "bitbucket.org/"}

// GitLocation is a parsed git template location.
type GitLocation struct {
	// URL is the clone URL.
	URL string
	// Ref is the branch named by the location itself, if any.
	Ref string
	// Subdir is the template root inside the repository, if any.
	Subdir string
}

// IsGitURL reports whether location names a git repository rather than a
// local directory. Recognized forms:
//   - scheme URLs: ssh://, git://, http://, https://, file://
//   - scp-like SSH: git@github.com:owner/repo.git
//   - shorthands: gh:owner/repo, github.com/owner/repo, gitlab.com/..., bitbucket.org/...
//   - any other location ending in ".git"
func IsGitURL(location string) bool {
	location = strings.TrimSpace(location)
	if location == "" {
		return false
	}
	for _, scheme := range []string{"ssh://", "git://", "http://", "https://", "file://"} {
		if strings.HasPrefix(location, scheme) {
			return true
		}
	}
	if scpLike.MatchString(location) || strings.HasPrefix(location, "gh:") {
		return true
	}
	for _, host := range shorthandHosts {
		if strings.HasPrefix(location, host) {
			return true
		}
	}
	return strings.HasSuffix(strings.TrimSuffix(location, "/"), ".git")
}

// IsLocalPath reports whether location refers to an existing local directory.
// An existing directory wins over git-looking names such as "tmpl.git".
func IsLocalPath(location string) bool {
	if location == "" {
		return false
	}
	info, err := os.Stat(location)
	return err == nil && info.IsDir()
}

// ParseGitLocation normalizes a git location into a clone URL, optional branch
// and optional subdirectory.
//
// A subdirectory is selected with a "//" separator after the repository
// ("https://host/repo.git//templates/go"), or for GitHub with the browser form
// "https://github.com/owner/repo/tree/<branch>/<path>". Shorthands expand to
// HTTPS clone URLs: "gh:owner/repo" and "github.com/owner/repo" become
// "https://github.com/owner/repo.git".
func ParseGitLocation(location string) (GitLocation, error) {
	loc, err := parseGitLocation(strings.TrimSpace(location))
	if err != nil {
		return GitLocation{}, err
	}
	if err := validateSubdir(loc.Subdir); err != nil {
		return GitLocation{}, err
	}
	return loc, nil
}

func parseGitLocation(location string) (GitLocation, error) {
	if location == "" {
		return GitLocation{}, fmt.Errorf("location cannot be empty")
	}

	if rest, ok := strings.CutPrefix(location, "gh:"); ok {
		return parseHostPath("github.com", rest)
	}
	for _, host := range shorthandHosts {
		if rest, ok := strings.CutPrefix(location, host); ok {
			return parseHostPath(strings.TrimSuffix(host, "/"), rest)
		}
	}

	if scpLike.MatchString(location) {
		repo, subdir := splitSubdir(location)
		return GitLocation{URL: repo, Subdir: subdir}, nil
	}

	u, err := url.Parse(location)
	if err != nil {
		return GitLocation{}, err
	}
	if u.Scheme == "" {
		// A path ending in .git.
		repo, subdir := splitSubdir(location)
		return GitLocation{URL: repo, Subdir: subdir}, nil
	}
	if u.Scheme != "file" && u.Host == "" {
		return GitLocation{}, fmt.Errorf("missing host in %q", location)
	}

	if (u.Scheme == "https" || u.Scheme == "http") && u.Host == "github.com" && strings.Contains(u.Path, "/tree/") {
		return parseHostPath("github.com", strings.TrimPrefix(u.Path, "/"))
	}

	prefix := u.Scheme + "://"
	repo, subdir := splitSubdir(strings.TrimPrefix(location, prefix))
	return GitLocation{URL: prefix + repo, Subdir: subdir}, nil
}

// parseHostPath parses "owner/repo[.git][/tree/<ref>][/<path>]" for a hosting
// service and returns its HTTPS clone URL.
func parseHostPath(host, s string) (GitLocation, error) {
	s, subdir := splitSubdir(s)
	parts := strings.Split(strings.Trim(s, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return GitLocation{}, fmt.Errorf("expected owner/repo on %s, got %q", host, s)
	}

	loc := GitLocation{
		URL:    fmt.Sprintf("https://%s/%s/%s.git", host, parts[0], strings.TrimSuffix(parts[1], ".git")),
		Subdir: subdir,
	}

	rest := parts[2:]
	if len(rest) >= 2 && rest[0] == "tree" {
		loc.Ref = rest[1]
		rest = rest[2:]
	}
	if len(rest) > 0 {
		if loc.Subdir != "" {
			return GitLocation{}, fmt.Errorf("subdirectory given twice in %q", s)
		}
		loc.Subdir = strings.Join(rest, "/")
	}
	return loc, nil
}

// splitSubdir splits "repo//sub/dir" into its repository and subdirectory.
func splitSubdir(s string) (string, string) {
	repo, subdir, found := strings.Cut(s, "//")
	if !found {
		return s, ""
	}
	return repo, strings.Trim(subdir, "/")
}

// validateSubdir rejects subdirectories escaping the repository root.
func validateSubdir(subdir string) error {
	if subdir == "" {
		return nil
	}
	cleaned := filepath.ToSlash(filepath.Clean(subdir))
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") || strings.HasPrefix(cleaned, "/") {
		return fmt.Errorf("subdirectory escapes the repository: %s", subdir)
	}
	return nil
}
