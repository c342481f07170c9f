package model

import (
	"os"

	"github.com/go-git/go-billy/v5"
)

// Special file and directory names used by scaffold.
const (
	// DescriptorFile is the template descriptor file name in the template root.
	DescriptorFile = ".scaffold.toml"
	// GitDir is the version control directory that is never copied from a template.
	GitDir = ".git"
)

// Reserved context keys. Templates may not declare parameters with these keys.
const (
	// KeyName holds the destination project name.
	KeyName = "name"
	// KeyTargetDir holds the absolute path of the destination root.
	KeyTargetDir = "target_dir"
)

// IsReservedKey reports whether key is populated by scaffold itself.
func IsReservedKey(key string) bool {
	return key == KeyName || key == KeyTargetDir
}

// TemplateSource identifies where a template was acquired from.
type TemplateSource struct {
	// Location is the user-supplied location (local path or repository URL).
	Location string
	// Provider is the provider name that acquired the template ("local" or "git").
	Provider string
	// URL is the clone URL for git templates.
	URL string
	// Ref is the git branch the template was cloned from (empty for local templates).
	Ref string
	// Subdir is the template root inside the repository, if not the top level.
	Subdir string
	// LocalPath is the absolute directory for local templates.
	LocalPath string
}

// Template is an acquired template: its source tree and parsed descriptor.
type Template struct {
	// Source describes where the template came from.
	Source TemplateSource
	// Descriptor is the parsed .scaffold.toml.
	Descriptor *TemplateDescriptor
	// Root is the template tree. Paths are relative to the template root.
	Root billy.Filesystem
}

// TreeEntry is one node of the template tree, relative to the template root.
// Excluded nodes never become entries.
type TreeEntry struct {
	// RelPath is the slash-separated path relative to the template root.
	RelPath string
	// IsDir reports whether the entry is a directory.
	IsDir bool
	// Mode is the source file mode.
	Mode os.FileMode
}
