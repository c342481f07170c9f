package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/tacogips/scaffold/internal/debug"
	"github.com/tacogips/scaffold/internal/template/model"
)

// LocalProvider implements Provider for templates in local directories.
type LocalProvider struct{}

// NewLocalProvider creates a new local filesystem provider.
func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

// Name returns the provider name.
func (p *LocalProvider) Name() string {
	return "local"
}

// Resolve converts a local path to a TemplateSource with an absolute path.
func (p *LocalProvider) Resolve(location string) (model.TemplateSource, error) {
	debug.Debug("[local] Resolving path: %s", location)

	path := strings.TrimSpace(location)
	if path == "" {
		return model.TemplateSource{}, NewInvalidURLError(p.Name(), location, fmt.Errorf("path cannot be empty"))
	}
	path, err := expandHome(path)
	if err != nil {
		return model.TemplateSource{}, NewInvalidURLError(p.Name(), location, err)
	}

	absPath, err := p.resolvePath(path)
	if err != nil {
		return model.TemplateSource{}, NewInvalidURLError(p.Name(), location, err)
	}
	debug.Debug("[local] Resolved to absolute path: %s", absPath)

	return model.TemplateSource{
		Location:  location,
		Provider:  p.Name(),
		LocalPath: absPath,
	}, nil
}

// Fetch opens the template directory. Files are read lazily by the generator.
func (p *LocalProvider) Fetch(ctx context.Context, src model.TemplateSource) (*model.Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewTimeoutError(p.Name(), src.Location, err)
	}

	info, err := os.Stat(src.LocalPath)
	if err != nil {
		if os.IsNotExist(err) {
			debug.Debug("[local] Template directory does not exist: %s", src.LocalPath)
			return nil, NewNotFoundError(p.Name(), src.Location)
		}
		return nil, NewFetchError(p.Name(), src.Location, err)
	}
	if !info.IsDir() {
		return nil, NewInvalidTemplateError(p.Name(), src.Location, "template path is not a directory", nil)
	}

	root := osfs.New(src.LocalPath)
	if err := checkRoot(p.Name(), src.Location, root); err != nil {
		return nil, err
	}

	debug.Debug("[local] Opened template at %s", src.LocalPath)
	return &model.Template{Source: src, Root: root}, nil
}

// resolvePath resolves a path to an absolute path relative to the working
// directory.
func (p *LocalProvider) resolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return filepath.Clean(filepath.Join(cwd, path)), nil
}
