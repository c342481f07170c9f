package generator

import (
	"os"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/tacogips/scaffold/internal/debug"
)

// Writer writes the destination tree. Paths are slash-separated and relative
// to the destination filesystem root.
type Writer interface {
	// WriteFile writes content to a file with the specified permissions.
	WriteFile(path string, content []byte, mode os.FileMode) error

	// CreateDir creates a directory and any necessary parent directories.
	// An existing directory is not an error.
	CreateDir(path string) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool

	// RemoveAll removes path and everything below it.
	RemoveAll(path string) error
}

// FileWriter implements Writer on a billy.Filesystem.
type FileWriter struct {
	fs                 billy.Filesystem
	preserveExecutable bool
}

// NewFileWriter creates a new FileWriter.
// If preserveExecutable is true, executable permissions from the source are kept.
// Otherwise, files are created with 0644.
func NewFileWriter(fs billy.Filesystem, preserveExecutable bool) *FileWriter {
	return &FileWriter{
		fs:                 fs,
		preserveExecutable: preserveExecutable,
	}
}

// WriteFile writes content atomically using a temporary file and rename.
// Parent directories are created if they don't exist.
func (w *FileWriter) WriteFile(name string, content []byte, mode os.FileMode) error {
	debug.Debug("[generator] Writing file: %s (size: %d bytes, mode: %o)", name, len(content), mode)

	if dir := path.Dir(name); dir != "." {
		if err := w.CreateDir(dir); err != nil {
			return newGeneratorError(GeneratorWriteFailed, "failed to create parent directory", name, err)
		}
	}

	fileMode := os.FileMode(0644)
	if w.preserveExecutable {
		fileMode = mode.Perm() | 0600
	}

	// The temporary file gets a unique name so existing siblings are never touched.
	dir := path.Dir(name)
	f, err := w.fs.TempFile(dir, "."+path.Base(name)+".tmp-")
	if err != nil {
		return newGeneratorError(GeneratorWriteFailed, "failed to create temporary file", name, err)
	}
	tempFile := path.Join(dir, filepath.Base(f.Name()))

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = w.fs.Remove(tempFile)
		return newGeneratorError(GeneratorWriteFailed, "failed to write file content", name, err)
	}
	if closeErr != nil {
		_ = w.fs.Remove(tempFile)
		return newGeneratorError(GeneratorWriteFailed, "failed to close file", name, closeErr)
	}

	if err := w.fs.Rename(tempFile, name); err != nil {
		_ = w.fs.Remove(tempFile)
		return newGeneratorError(GeneratorWriteFailed, "failed to rename temporary file", name, err)
	}

	// TempFile creates files with 0600 regardless of the source mode.
	if ch, ok := w.fs.(billy.Change); ok {
		if err := ch.Chmod(name, fileMode); err != nil {
			debug.Debug("[generator] Chmod %s failed: %v", name, err)
		}
	}
	return nil
}

// CreateDir creates a directory with 0755 permissions.
func (w *FileWriter) CreateDir(name string) error {
	if err := w.fs.MkdirAll(name, 0755); err != nil {
		return newGeneratorError(GeneratorWriteFailed, "failed to create directory", name, err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(name string) bool {
	_, err := w.fs.Stat(name)
	return err == nil
}

// RemoveAll removes name and its contents.
func (w *FileWriter) RemoveAll(name string) error {
	debug.Debug("[generator] Removing %s", name)
	if err := util.RemoveAll(w.fs, name); err != nil {
		return newGeneratorError(GeneratorDestinationUnavailable, "failed to remove existing destination", name, err)
	}
	return nil
}
