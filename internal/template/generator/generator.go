// Package generator reproduces a template tree at a destination with every
// path and file content rendered against a context.
package generator

import (
	"context"
	"fmt"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/iancoleman/strcase"

	"github.com/tacogips/scaffold/internal/debug"
	"github.com/tacogips/scaffold/internal/template/engine"
	"github.com/tacogips/scaffold/internal/template/model"
)

// Mode is the destination collision policy.
type Mode int

const (
	// ModeAbort refuses to generate into an existing project directory.
	ModeAbort Mode = iota
	// ModeForce removes an existing project directory and recreates it.
	ModeForce
	// ModeAppend writes directly into the target directory, without a
	// project-name subdirectory. Existing files are overwritten unless
	// SkipExisting is set.
	ModeAppend
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeAbort:
		return "abort"
	case ModeForce:
		return "force"
	case ModeAppend:
		return "append"
	default:
		return "unknown"
	}
}

// ProjectDir returns the destination root, relative to the target directory,
// for a project name: the kebab-cased name, or "." in append mode. It returns
// "" when the kebab-cased name is not a single usable path component.
func ProjectDir(name string, mode Mode) string {
	if mode == ModeAppend {
		return "."
	}
	dir := strcase.ToKebab(name)
	if err := validateComponent(dir, name); err != nil {
		debug.Debug("[generator] Unusable project directory for %q: %v", name, err)
		return ""
	}
	return dir
}

// Generator generates projects from templates.
type Generator interface {
	// Generate writes the rendered template tree into opts.Dest.
	Generate(ctx context.Context, opts GenerateOptions) (*Result, error)

	// DryRun renders everything Generate would write without touching opts.Dest.
	DryRun(ctx context.Context, opts GenerateOptions) (*Result, error)
}

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// Template is the template to generate from.
	Template *model.Template

	// Context holds the values every render sees. Its name selects the
	// project directory.
	Context model.Context

	// Dest is the target directory.
	Dest billy.Filesystem

	// Mode is the destination collision policy.
	Mode Mode

	// SkipExisting keeps existing destination files instead of overwriting them.
	SkipExisting bool

	// ExtraExclude are exclusion patterns applied in addition to the descriptor's.
	ExtraExclude []string
}

// OutcomeStatus is the per-entry generation result.
type OutcomeStatus int

const (
	// OutcomeWritten means the entry was written (or would be, in a dry run).
	OutcomeWritten OutcomeStatus = iota
	// OutcomeSkipped means an existing file was kept.
	OutcomeSkipped
	// OutcomeFailed means the entry could not be rendered or written.
	OutcomeFailed
)

// String returns the status name.
func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeWritten:
		return "written"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome records what happened to one template entry.
type Outcome struct {
	// Source is the template path.
	Source string
	// Path is the rendered destination path, relative to Dest.
	Path string
	// IsDir reports whether the entry is a directory.
	IsDir bool
	// Status is the result.
	Status OutcomeStatus
	// Existed reports whether the destination entry existed beforehand.
	Existed bool
	// Err is the failure cause when Status is OutcomeFailed.
	Err error
}

// Result summarizes a generation run.
type Result struct {
	// State is the terminal state: Done, PartiallyFailed or Aborted.
	State State

	// AbortReason is the fatal error when State is Aborted.
	AbortReason error

	// Root is the destination root relative to Dest.
	Root string

	// DryRun reports whether nothing was written.
	DryRun bool

	// FilesCreated is the number of new files created.
	FilesCreated int

	// FilesOverwritten is the number of existing files overwritten.
	FilesOverwritten int

	// FilesSkipped is the number of existing files kept.
	FilesSkipped int

	// DirsCreated is the number of directories created.
	DirsCreated int

	// Outcomes lists every entry in walk order.
	Outcomes []Outcome

	// Errors contains the per-entry failures.
	Errors []error

	// Digest is a BLAKE3 digest of the generated paths and contents.
	Digest string
}

// Failed returns the failed outcomes.
func (r *Result) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == OutcomeFailed {
			out = append(out, o)
		}
	}
	return out
}

// Option configures a DefaultGenerator.
type Option func(*DefaultGenerator)

// WithBinaryExtensions overrides the extensions copied verbatim.
func WithBinaryExtensions(exts []string) Option {
	return func(g *DefaultGenerator) {
		g.binaryExtensions = exts
	}
}

// WithPreserveExecutable controls whether source file modes are kept.
func WithPreserveExecutable(preserve bool) Option {
	return func(g *DefaultGenerator) {
		g.preserveExecutable = preserve
	}
}

// DefaultGenerator implements Generator.
type DefaultGenerator struct {
	engine             engine.Engine
	binaryExtensions   []string
	preserveExecutable bool
}

// NewGenerator creates a DefaultGenerator rendering with e.
func NewGenerator(e engine.Engine, opts ...Option) *DefaultGenerator {
	g := &DefaultGenerator{
		engine:             e,
		preserveExecutable: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate implements Generator.
func (g *DefaultGenerator) Generate(ctx context.Context, opts GenerateOptions) (*Result, error) {
	return g.generate(ctx, opts, false)
}

// DryRun implements Generator.
func (g *DefaultGenerator) DryRun(ctx context.Context, opts GenerateOptions) (*Result, error) {
	return g.generate(ctx, opts, true)
}

// planned is a walked entry with its rendered destination path.
type planned struct {
	entry model.TreeEntry
	dest  string
}

func (g *DefaultGenerator) generate(ctx context.Context, opts GenerateOptions, dryRun bool) (*Result, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	sm := &machine{}
	root := ProjectDir(opts.Context.Name(), opts.Mode)
	result := &Result{Root: root, DryRun: dryRun}

	abort := func(err error) (*Result, error) {
		sm.to(StateAborted)
		result.State = sm.state
		result.AbortReason = err
		debug.Debug("[generator] Aborted: %v", err)
		return result, err
	}

	debug.Debug("[generator] Starting generation: template=%s, root=%s, mode=%s, dryRun=%v",
		opts.Template.Descriptor.Title(), root, opts.Mode, dryRun)

	// Every path is rendered before the destination is touched.
	sm.to(StateWalking)
	excluder := NewExcluder(opts.Template.Descriptor.Exclude, opts.ExtraExclude)
	entries, err := Walk(opts.Template.Root, excluder)
	if err != nil {
		return abort(err)
	}

	plan := make([]planned, 0, len(entries))
	for _, entry := range entries {
		rendered, err := RenderPath(g.engine, entry.RelPath, opts.Context)
		if err != nil {
			return abort(err)
		}
		plan = append(plan, planned{entry: entry, dest: path.Join(root, rendered)})
	}

	writer := NewFileWriter(opts.Dest, g.preserveExecutable)
	cleared, err := prepareRoot(writer, root, opts.Mode, dryRun)
	if err != nil {
		return abort(err)
	}

	processor := NewFileProcessor(g.engine, g.binaryExtensions)
	dg := newDigest()

	for _, p := range plan {
		if err := ctx.Err(); err != nil {
			return abort(err)
		}

		outcome := Outcome{Source: p.entry.RelPath, Path: p.dest, IsDir: p.entry.IsDir}
		outcome.Existed = !cleared && writer.Exists(p.dest)

		if p.entry.IsDir {
			sm.to(StateWriting)
			dg.addDir(p.dest)
			if !dryRun {
				if err := writer.CreateDir(p.dest); err != nil {
					g.fail(result, &outcome, err)
					continue
				}
			}
			if !outcome.Existed {
				result.DirsCreated++
			}
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}

		if outcome.Existed && opts.SkipExisting {
			debug.Debug("[generator] Skipping existing file: %s", p.dest)
			outcome.Status = OutcomeSkipped
			result.FilesSkipped++
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}

		sm.to(StateRendering)
		content, err := util.ReadFile(opts.Template.Root, p.entry.RelPath)
		if err != nil {
			g.fail(result, &outcome, newGeneratorError(GeneratorReadFailed, "failed to read template file", p.entry.RelPath, err))
			continue
		}
		content, err = processor.Process(p.entry.RelPath, content, opts.Context)
		if err != nil {
			g.fail(result, &outcome, err)
			continue
		}
		dg.addFile(p.dest, content)

		sm.to(StateWriting)
		if !dryRun {
			if err := writer.WriteFile(p.dest, content, p.entry.Mode); err != nil {
				g.fail(result, &outcome, err)
				continue
			}
		}
		if outcome.Existed {
			debug.Debug("[generator] Overwrote %s", p.dest)
			result.FilesOverwritten++
		} else {
			result.FilesCreated++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	sm.to(StateDone)
	if len(result.Errors) > 0 {
		sm.to(StatePartiallyFailed)
	}
	result.State = sm.state
	result.Digest = dg.sum()

	debug.Debug("[generator] Generation complete: state=%s, created=%d, overwritten=%d, skipped=%d, dirs=%d, errors=%d",
		result.State, result.FilesCreated, result.FilesOverwritten, result.FilesSkipped, result.DirsCreated, len(result.Errors))
	return result, nil
}

func (g *DefaultGenerator) fail(result *Result, outcome *Outcome, err error) {
	debug.Debug("[generator] Entry failed: %v", err)
	outcome.Status = OutcomeFailed
	outcome.Err = err
	result.Errors = append(result.Errors, err)
	result.Outcomes = append(result.Outcomes, *outcome)
}

// prepareRoot applies the collision policy to the destination root. It
// reports whether an existing root was (or, in a dry run, would be) removed.
func prepareRoot(w Writer, root string, mode Mode, dryRun bool) (bool, error) {
	if root == "." {
		return false, nil
	}

	cleared := false
	if w.Exists(root) {
		switch mode {
		case ModeAbort:
			return false, newGeneratorError(GeneratorDestinationCollision,
				"destination already exists (use --force to replace it or --append to write into the target directory)", root, nil)
		case ModeForce:
			cleared = true
			if dryRun {
				debug.Debug("[generator] Dry run: would remove %s", root)
				return cleared, nil
			}
			if err := w.RemoveAll(root); err != nil {
				return false, err
			}
		}
	}

	if dryRun {
		return cleared, nil
	}
	if err := w.CreateDir(root); err != nil {
		return false, newGeneratorError(GeneratorDestinationUnavailable, "failed to create destination", root, err)
	}
	return cleared, nil
}

func validateOptions(opts GenerateOptions) error {
	if opts.Template == nil || opts.Template.Root == nil {
		return fmt.Errorf("template cannot be nil")
	}
	if opts.Template.Descriptor == nil {
		return fmt.Errorf("template descriptor cannot be nil")
	}
	if opts.Dest == nil {
		return fmt.Errorf("destination cannot be nil")
	}
	if opts.Context.Name() == "" {
		return fmt.Errorf("context has no project name")
	}
	if ProjectDir(opts.Context.Name(), opts.Mode) == "" {
		return fmt.Errorf("project name %q has no usable directory name", opts.Context.Name())
	}
	return nil
}
