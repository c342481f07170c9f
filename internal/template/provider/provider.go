// Package provider acquires template trees from local directories and git
// repositories.
package provider

import (
	"context"

	"github.com/go-git/go-billy/v5"

	"github.com/tacogips/scaffold/internal/template/descriptor"
	"github.com/tacogips/scaffold/internal/template/model"
)

// Provider abstracts template source locations (local filesystem, git).
type Provider interface {
	// Resolve converts a user-supplied location into a TemplateSource.
	Resolve(location string) (model.TemplateSource, error)

	// Fetch acquires the template tree for src. The returned Template has
	// its Root set and its Descriptor unset; descriptor problems are reported
	// by the descriptor package, not as acquisition failures.
	Fetch(ctx context.Context, src model.TemplateSource) (*model.Template, error)

	// Name returns the provider name ("local" or "git").
	Name() string
}

// Acquire resolves location with p, fetches the tree and loads its descriptor.
func Acquire(ctx context.Context, p Provider, location string) (*model.Template, error) {
	src, err := p.Resolve(location)
	if err != nil {
		return nil, err
	}
	tmpl, err := p.Fetch(ctx, src)
	if err != nil {
		return nil, err
	}
	d, err := descriptor.LoadFS(tmpl.Root)
	if err != nil {
		return nil, err
	}
	tmpl.Descriptor = d
	return tmpl, nil
}

// checkRoot verifies that root looks like a template: a readable directory
// holding a descriptor file.
func checkRoot(provider, location string, root billy.Filesystem) error {
	entries, err := root.ReadDir(".")
	if err != nil {
		return NewNotFoundError(provider, location)
	}
	if len(entries) == 0 {
		return NewInvalidTemplateError(provider, location, "template directory is empty", nil)
	}
	if _, err := root.Stat(model.DescriptorFile); err != nil {
		return NewInvalidTemplateError(provider, location, "template has no "+model.DescriptorFile, nil)
	}
	return nil
}

// chroot narrows root to subdir when one is set.
func chroot(provider, location string, root billy.Filesystem, subdir string) (billy.Filesystem, error) {
	if subdir == "" {
		return root, nil
	}
	info, err := root.Stat(subdir)
	if err != nil || !info.IsDir() {
		return nil, NewProviderError(ProviderNotFound, provider, location,
			"subdirectory "+subdir+" not found in template source", err)
	}
	return root.Chroot(subdir)
}
