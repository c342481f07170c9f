package generator

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/scaffold/internal/template/model"
)

// TestIsSpecialFile tests special file detection.
func TestIsSpecialFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"descriptor at root", model.DescriptorFile, true},
		{"descriptor with dot prefix", "./" + model.DescriptorFile, true},
		{"descriptor in subdir", "sub/" + model.DescriptorFile, false},
		{".git at root", ".git", true},
		{".git content", ".git/HEAD", true},
		{"nested .git", "vendor/lib/.git/config", true},
		{"regular file", "main.go", false},
		{"similar name", ".gitignore", false},
		{"similar descriptor", ".scaffold.toml.bak", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsSpecialFile(tt.path)
			if result != tt.expected {
				t.Errorf("IsSpecialFile(%q) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}

// TestMatchesPattern tests glob pattern matching.
func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		isDir    bool
		pattern  string
		expected bool
	}{
		{"exact match", "test.txt", false, "test.txt", true},
		{"wildcard extension", "file.txt", false, "*.txt", true},
		{"wildcard all", "anything", false, "*", true},
		{"basename match in subdir", "dir/file.txt", false, "*.txt", true},
		{"pattern with slash", "dir/file.txt", false, "dir/*.txt", true},
		{"pattern with slash is anchored", "x/dir/file.txt", false, "dir/*.txt", false},
		{"double star", "a/b/c/file.txt", false, "a/**/file.txt", true},
		{"leading double star", "deep/nested/secret.md", false, "**/secret.md", true},
		{"dot slash prefix", "target", true, "./target", true},
		{"directory pattern matches dir", "target", true, "target/", true},
		{"directory pattern skips file", "target", false, "target/", false},
		{"no match", "file.go", false, "*.txt", false},
		{"case sensitive", "FILE.txt", false, "file.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MatchesPattern(tt.path, tt.isDir, tt.pattern)
			if result != tt.expected {
				t.Errorf("MatchesPattern(%q, %v, %q) = %v, want %v", tt.path, tt.isDir, tt.pattern, result, tt.expected)
			}
		})
	}
}

func TestExcluder(t *testing.T) {
	ex := NewExcluder([]string{"*.log"}, []string{".DS_Store"})

	assert.True(t, ex.Excluded("app.log", false))
	assert.True(t, ex.Excluded("sub/.DS_Store", false))
	assert.True(t, ex.Excluded(model.DescriptorFile, false))
	assert.False(t, ex.Excluded("main.go", false))

	assert.False(t, NewExcluder().Excluded("main.go", false))
}

func TestWalk_OrderAndPruning(t *testing.T) {
	fs := memfs.New()
	for _, p := range []string{"b.txt", "a/z.txt", "a/b/c.txt", "skip/inner.txt", "c.log", model.DescriptorFile} {
		require.NoError(t, util.WriteFile(fs, p, []byte(p), 0644))
	}

	entries, err := Walk(fs, NewExcluder([]string{"skip", "*.log"}))
	require.NoError(t, err)

	var got []string
	for _, e := range entries {
		p := e.RelPath
		if e.IsDir {
			p += "/"
		}
		got = append(got, p)
	}
	assert.Equal(t, []string{"a/", "a/b/", "a/b/c.txt", "a/z.txt", "b.txt"}, got)
}

func TestWalk_Symlinks(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "real.txt", []byte("x"), 0644))
	require.NoError(t, fs.MkdirAll("dir", 0755))
	require.NoError(t, fs.Symlink("real.txt", "link.txt"))
	require.NoError(t, fs.Symlink("dir", "dirlink"))
	require.NoError(t, fs.Symlink("nowhere", "dangling"))

	entries, err := Walk(fs, NewExcluder())
	require.NoError(t, err)

	byPath := make(map[string]model.TreeEntry)
	for _, e := range entries {
		byPath[e.RelPath] = e
	}
	require.Contains(t, byPath, "link.txt")
	assert.False(t, byPath["link.txt"].IsDir)
	assert.True(t, byPath["link.txt"].Mode.IsRegular())
	assert.NotContains(t, byPath, "dirlink")
	assert.NotContains(t, byPath, "dangling")
}

func TestWalk_MissingRoot(t *testing.T) {
	fs := memfs.New()
	sub, err := fs.Chroot("missing")
	require.NoError(t, err)

	_, err = Walk(sub, NewExcluder())
	require.Error(t, err)
	assert.True(t, IsType(err, GeneratorWalkFailed))
}
