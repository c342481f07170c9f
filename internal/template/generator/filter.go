package generator

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/tacogips/scaffold/internal/debug"
	"github.com/tacogips/scaffold/internal/template/model"
)

// IsSpecialFile checks if a path is never generated regardless of patterns.
// Returns true for:
// - the descriptor file at the template root
// - any ".git" entry at any depth
func IsSpecialFile(rel string) bool {
	rel = normalize(rel)
	if rel == model.DescriptorFile {
		return true
	}
	for _, part := range strings.Split(rel, "/") {
		if part == model.GitDir {
			return true
		}
	}
	return false
}

// MatchesPattern checks if a slash-separated relative path matches a doublestar
// glob. Patterns without a "/" also match the base name, so "*.log" excludes
// logs at any depth. A trailing "/" restricts the pattern to directories.
func MatchesPattern(rel string, isDir bool, pattern string) bool {
	rel = normalize(rel)
	pattern = normalize(pattern)

	if strings.HasSuffix(pattern, "/") {
		if !isDir {
			return false
		}
		pattern = strings.TrimSuffix(pattern, "/")
	}
	if pattern == "" {
		return false
	}

	if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		if ok, err := doublestar.Match(pattern, path.Base(rel)); err == nil && ok {
			return true
		}
	}
	return false
}

// Excluder decides which template entries are excluded from generation.
type Excluder struct {
	patterns []string
}

// NewExcluder creates an Excluder for the descriptor's patterns plus any extra
// global patterns.
func NewExcluder(patterns ...[]string) *Excluder {
	var all []string
	for _, p := range patterns {
		all = append(all, p...)
	}
	return &Excluder{patterns: all}
}

// Excluded reports whether the entry at rel is excluded. An excluded directory
// excludes its whole subtree.
func (e *Excluder) Excluded(rel string, isDir bool) bool {
	if IsSpecialFile(rel) {
		debug.Debug("[generator] Excluding special entry: %s", rel)
		return true
	}
	for _, pattern := range e.patterns {
		if MatchesPattern(rel, isDir, pattern) {
			debug.Debug("[generator] Excluding %s (matched pattern: %s)", rel, pattern)
			return true
		}
	}
	return false
}

func normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	return strings.TrimPrefix(p, "./")
}
