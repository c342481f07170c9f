package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/tacogips/scaffold/internal/config"
	"github.com/tacogips/scaffold/internal/debug"
	"github.com/tacogips/scaffold/internal/template/engine"
	"github.com/tacogips/scaffold/internal/template/generator"
	"github.com/tacogips/scaffold/internal/template/model"
	"github.com/tacogips/scaffold/internal/template/params"
	"github.com/tacogips/scaffold/internal/template/provider"
)

// GenerateOptions holds options for generating a project.
type GenerateOptions struct {
	// Location is the template location (local directory or git URL).
	Location string
	// Name is the project name. Empty means prompt (or the "name" override).
	Name string
	// TargetDir is the directory the project is generated under. Empty uses
	// the configured default.
	TargetDir string
	// Mode is the destination collision policy.
	Mode generator.Mode
	// SkipExisting keeps existing files in append and force modes.
	SkipExisting bool
	// DryRun renders everything without writing.
	DryRun bool
	// Overrides are parameter values given up front.
	Overrides params.Overrides
	// Prompter asks for values that have no valid override. Nil disables
	// prompting: defaults apply and required parameters fail.
	Prompter params.Prompter
	// MaxAttempts bounds re-prompting per parameter (0 = unlimited).
	MaxAttempts int
	// Ref is the git branch to clone.
	Ref string
	// Passphrase decrypts the SSH key.
	Passphrase string
	// PassphraseFunc asks for a passphrase when the key needs one.
	PassphraseFunc func() (string, error)
	// Config is the loaded configuration. Nil uses defaults.
	Config *config.Config
}

// GenerateResult holds the result of a generation run.
type GenerateResult struct {
	// Template is the acquired template.
	Template *model.Template
	// Context is the final rendering context.
	Context model.Context
	// TargetDir is the absolute target directory.
	TargetDir string
	// ProjectDir is the absolute destination root.
	ProjectDir string
	// Generation is the generator result.
	Generation *generator.Result
	// Notes is the rendered post-generation notes.
	Notes string
	// NotesErr is set when the notes failed to render. It never fails the run.
	NotesErr error
}

// Generate runs the whole pipeline: acquire the template, collect parameters
// and the project name, build the context, generate the tree and render the
// notes.
//
// A returned *GenerateResult is non-nil whenever generation started, including
// when the error is a PartialFailure.
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	debug.DebugSection("[app] Generate workflow start")
	debug.DebugValue("[app] Template location", opts.Location)
	debug.DebugValue("[app] Mode", opts.Mode.String())
	debug.DebugValue("[app] Dry run", opts.DryRun)

	if opts.Location == "" {
		return nil, NewValidationError("template location is required", nil)
	}
	if opts.SkipExisting && opts.Mode == generator.ModeAbort {
		return nil, NewValidationError("--skip-existing requires --append or --force", nil)
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	tmpl, err := acquire(ctx, opts, cfg)
	if err != nil {
		return nil, err
	}
	debug.Debug("[app] Template acquired: %s (%d parameters)", tmpl.Descriptor.Title(), len(tmpl.Descriptor.Parameters))

	overrides := MergeOverrides(opts.Overrides)
	if opts.Name != "" {
		overrides[model.KeyName] = opts.Name
	}
	if err := checkOverrides(tmpl.Descriptor, overrides); err != nil {
		return nil, err
	}

	collector := newCollector(opts)
	values, err := collector.Collect(ctx, tmpl.Descriptor.Parameters, overrides)
	if err != nil {
		return nil, NewGenerationError("failed to collect parameters", err)
	}
	name, err := collector.CollectName(ctx, overrides)
	if err != nil {
		return nil, NewGenerationError("failed to collect project name", err)
	}

	targetDir := opts.TargetDir
	if targetDir == "" {
		targetDir = cfg.Defaults.TargetDir
	}
	absTarget, err := config.ExpandPath(targetDir)
	if err != nil {
		return nil, NewValidationError("invalid target directory", err)
	}

	projectDir := generator.ProjectDir(name, opts.Mode)
	if projectDir == "" {
		return nil, NewValidationError(fmt.Sprintf("project name %q has no usable directory name", name), nil)
	}
	absProject := filepath.Join(absTarget, projectDir)
	debug.DebugValue("[app] Destination root", absProject)

	renderCtx, err := params.BuildContext(values, name, absProject, overrides)
	if err != nil {
		return nil, NewValidationError("failed to build context", err)
	}

	if !opts.DryRun {
		if err := os.MkdirAll(absTarget, 0755); err != nil {
			return nil, NewAppError(GenerationFailed, "failed to create target directory", err)
		}
	}

	e := engine.New()
	gen := generator.NewGenerator(e,
		generator.WithBinaryExtensions(cfg.Templates.BinaryExtensions),
		generator.WithPreserveExecutable(cfg.Templates.PreserveExecutable),
	)
	genOpts := generator.GenerateOptions{
		Template:     tmpl,
		Context:      renderCtx,
		Dest:         osfs.New(absTarget),
		Mode:         opts.Mode,
		SkipExisting: opts.SkipExisting,
		ExtraExclude: cfg.Templates.IgnorePatterns,
	}

	var genResult *generator.Result
	if opts.DryRun {
		genResult, err = gen.DryRun(ctx, genOpts)
	} else {
		genResult, err = gen.Generate(ctx, genOpts)
	}

	result := &GenerateResult{
		Template:   tmpl,
		Context:    renderCtx,
		TargetDir:  absTarget,
		ProjectDir: absProject,
		Generation: genResult,
	}
	if err != nil {
		return result, NewGenerationError("generation aborted", err)
	}

	result.Notes, result.NotesErr = generator.RenderNotes(e, tmpl.Descriptor, renderCtx)
	if result.NotesErr != nil {
		debug.Debug("[app] Notes failed to render: %v", result.NotesErr)
	}

	debug.Debug("[app] Generate workflow completed: state=%s", genResult.State)
	if genResult.State == generator.StatePartiallyFailed {
		return result, NewAppError(PartialFailure,
			fmt.Sprintf("%d of %d entries failed", len(genResult.Errors), len(genResult.Outcomes)), nil)
	}
	return result, nil
}

// acquire resolves, fetches and parses the template.
func acquire(ctx context.Context, opts GenerateOptions, cfg *config.Config) (*model.Template, error) {
	gitOpts, err := gitOptions(opts, cfg)
	if err != nil {
		return nil, err
	}

	p, err := provider.NewProvider(opts.Location, gitOpts)
	if err != nil {
		return nil, NewSourceError("failed to select template provider", err)
	}

	fetchCtx := ctx
	if cfg.Git.Timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Git.Timeout)*time.Second)
		defer cancel()
	}

	tmpl, err := provider.Acquire(fetchCtx, p, opts.Location)
	if err != nil {
		if provider.IsProviderError(err) {
			return nil, NewSourceError("failed to acquire template", err)
		}
		return nil, NewValidationError("invalid template descriptor", err)
	}
	return tmpl, nil
}

// gitOptions builds the git provider options from the run options and the
// configuration.
func gitOptions(opts GenerateOptions, cfg *config.Config) (provider.GitOptions, error) {
	token := cfg.Git.Token
	if token == "" {
		token = provider.GetGitHubTokenFromEnv()
	}
	sshKey, err := config.ExpandPath(cfg.Git.SSHKey)
	if err != nil {
		return provider.GitOptions{}, NewValidationError("invalid git.ssh_key", err)
	}
	return provider.GitOptions{
		Ref:            opts.Ref,
		DefaultRef:     cfg.Git.DefaultRef,
		SSHKeyPath:     sshKey,
		SSHUser:        cfg.Git.SSHUser,
		Passphrase:     opts.Passphrase,
		PassphraseFunc: opts.PassphraseFunc,
		Token:          token,
	}, nil
}

// checkOverrides rejects overrides that would shadow a reserved key.
func checkOverrides(d *model.TemplateDescriptor, overrides params.Overrides) error {
	if _, ok := overrides[model.KeyTargetDir]; ok {
		return NewValidationError(fmt.Sprintf("%s is computed and cannot be set", model.KeyTargetDir), nil)
	}
	for key := range overrides {
		if _, declared := d.Parameter(key); declared || model.IsReservedKey(key) {
			continue
		}
		debug.Debug("[app] Override %s is not a declared parameter, passing it through", key)
	}
	return nil
}

// nonInteractive applies defaults for unanswered parameters and fails on a
// rejected override instead of silently falling back to the default.
var nonInteractive = params.PrompterFunc(func(ctx context.Context, req params.Request) (params.Answer, error) {
	if req.Problem != nil {
		return params.Answer{}, req.Problem
	}
	return params.EmptyPrompter.Ask(ctx, req)
})

func newCollector(opts GenerateOptions) *params.Collector {
	if opts.Prompter == nil {
		return params.NewCollector(nonInteractive, params.WithMaxAttempts(1))
	}
	return params.NewCollector(opts.Prompter, params.WithMaxAttempts(opts.MaxAttempts))
}
