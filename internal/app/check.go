package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tacogips/scaffold/internal/debug"
	"github.com/tacogips/scaffold/internal/template/descriptor"
	"github.com/tacogips/scaffold/internal/template/model"
)

// CheckOptions holds options for descriptor validation.
type CheckOptions struct {
	// Path is a template directory or a descriptor file.
	Path string
}

// CheckResult holds a validated descriptor.
type CheckResult struct {
	// File is the absolute descriptor path.
	File string
	// Descriptor is the parsed descriptor.
	Descriptor *model.TemplateDescriptor
}

// Check loads and validates a local template descriptor without rendering
// anything.
func Check(opts CheckOptions) (*CheckResult, error) {
	absPath, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, NewValidationError("failed to get absolute path", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("path not found: %s", absPath), err)
	}
	file := absPath
	if info.IsDir() {
		file = filepath.Join(absPath, model.DescriptorFile)
	}
	debug.Debug("[app] Checking descriptor %s", file)

	d, err := descriptor.Load(file)
	if err != nil {
		return nil, NewValidationError("invalid template descriptor", err)
	}
	return &CheckResult{File: file, Descriptor: d}, nil
}
