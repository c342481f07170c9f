package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tacogips/scaffold/internal/app"
	"github.com/tacogips/scaffold/internal/config"
	"github.com/tacogips/scaffold/internal/debug"
	"github.com/tacogips/scaffold/internal/template/generator"
	"github.com/tacogips/scaffold/internal/template/params"
)

// generateOptions holds the flags of the generate command.
type generateOptions struct {
	name         string
	force        bool
	append       bool
	targetDir    string
	passphrase   bool
	ref          string
	set          []string
	valuesFile   string
	noPrompt     bool
	skipExisting bool
	dryRun       bool
	verbose      bool
}

func newGenerateCmd(globals *globalOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate <template>",
		Short: "Generate a project from a template",
		Long: `Generate a project from a local template directory or a git repository.

Parameter values come from --values and --set first; anything still missing
is asked for interactively, unless --no-prompt is set or stdin is not a
terminal, in which case defaults apply.

By default the project is created in <target-directory>/<kebab-case name> and
an existing directory is an error. --force replaces it; --append writes
straight into the target directory.

Examples:
  scaffold generate ./templates/go-service --name billing
  scaffold generate github.com/acme/templates//web --set license=MIT --no-prompt
  scaffold generate ./tmpl --values answers.yaml --dry-run --verbose`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, globals, opts, args[0])
		},
	}
	addGenerateFlags(cmd, opts)
	return cmd
}

func addGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	f := cmd.Flags()
	f.StringVarP(&opts.name, FlagName, "n", "", DescName)
	f.BoolVarP(&opts.force, FlagForce, "f", false, DescForce)
	f.BoolVarP(&opts.append, FlagAppend, "a", false, DescAppend)
	f.StringVarP(&opts.targetDir, FlagTargetDir, "d", "", DescTargetDir)
	f.BoolVarP(&opts.passphrase, FlagPassphrase, "p", false, DescPassphrase)
	f.StringVar(&opts.ref, FlagRef, "", DescRef)
	f.StringArrayVar(&opts.set, FlagSet, nil, DescSet)
	f.StringVar(&opts.valuesFile, FlagValues, "", DescValues)
	f.BoolVar(&opts.noPrompt, FlagNoPrompt, false, DescNoPrompt)
	f.BoolVar(&opts.skipExisting, FlagSkipExisting, false, DescSkipExisting)
	f.BoolVar(&opts.dryRun, FlagDryRun, false, DescDryRun)
	f.BoolVar(&opts.verbose, FlagVerbose, false, DescVerbose)
}

func runGenerate(cmd *cobra.Command, globals *globalOptions, opts *generateOptions, location string) error {
	if opts.force && opts.append {
		return app.NewValidationError(fmt.Sprintf("--%s and --%s cannot be used together", FlagForce, FlagAppend), nil)
	}

	cfg, err := loadConfig(globals.configPath)
	if err != nil {
		return err
	}

	noColor := globals.noColor || !cfg.Output.Color || os.Getenv("NO_COLOR") != ""
	debug.SetNoColor(noColor)
	p := &printer{
		out:     cmd.OutOrStdout(),
		err:     cmd.ErrOrStderr(),
		quiet:   globals.quiet || cfg.Output.Quiet,
		noColor: noColor,
	}

	overrides, err := collectOverrides(opts)
	if err != nil {
		return err
	}

	interactive := !opts.noPrompt && isTerminal(cmd.InOrStdin())
	genOpts := app.GenerateOptions{
		Location:     location,
		Name:         opts.name,
		TargetDir:    opts.targetDir,
		Mode:         mode(opts),
		SkipExisting: opts.skipExisting,
		DryRun:       opts.dryRun,
		Overrides:    overrides,
		Ref:          opts.ref,
		Config:       cfg,
	}
	if interactive {
		genOpts.Prompter = newSurveyPrompter(p, noColor)
		genOpts.PassphraseFunc = readPassphrase(cmd.ErrOrStderr())
	}
	if opts.passphrase {
		pass, err := readPassphrase(cmd.ErrOrStderr())()
		if err != nil {
			return err
		}
		genOpts.Passphrase = pass
	}

	p.info("Generating from %s", location)
	result, err := app.Generate(cmd.Context(), genOpts)
	if result != nil && result.Generation != nil {
		printSummary(p, result, opts.verbose)
	}
	if err != nil {
		if result != nil && result.Generation != nil {
			for _, o := range result.Generation.Failed() {
				p.errorMsg("%s: %v", o.Path, o.Err)
			}
		}
		return err
	}

	printNotes(p, result)
	return nil
}

func mode(opts *generateOptions) generator.Mode {
	switch {
	case opts.force:
		return generator.ModeForce
	case opts.append:
		return generator.ModeAppend
	default:
		return generator.ModeAbort
	}
}

// loadConfig loads the config file. An explicit path must exist; the default
// path falls back to the built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	loader := config.NewLoader()
	if path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, err
		}
		return loader.Load(expanded)
	}
	return loader.LoadOrDefault(config.DefaultConfigPath())
}

// collectOverrides merges the values file and --set pairs; --set wins.
func collectOverrides(opts *generateOptions) (params.Overrides, error) {
	var fromFile params.Overrides
	if opts.valuesFile != "" {
		var err error
		fromFile, err = app.LoadValuesFile(opts.valuesFile)
		if err != nil {
			return nil, err
		}
		if err := app.ResolveFileReferences(fromFile, filepath.Dir(opts.valuesFile)); err != nil {
			return nil, err
		}
	}

	fromFlags, err := app.ParseSetFlags(opts.set)
	if err != nil {
		return nil, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	if err := app.ResolveFileReferences(fromFlags, cwd); err != nil {
		return nil, err
	}

	return app.MergeOverrides(fromFile, fromFlags), nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// isTerminalWriter reports whether w is an interactive terminal.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readPassphrase returns a function that reads an SSH key passphrase from the
// terminal without echo.
func readPassphrase(prompt io.Writer) func() (string, error) {
	return func() (string, error) {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return "", app.NewValidationError("a passphrase is required but stdin is not a terminal", nil)
		}
		fmt.Fprint(prompt, "SSH key passphrase: ")
		pass, err := term.ReadPassword(fd)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read passphrase: %w", err)
		}
		return string(pass), nil
	}
}

func printSummary(p *printer, result *app.GenerateResult, verbose bool) {
	gen := result.Generation

	if verbose {
		for _, o := range gen.Outcomes {
			if o.IsDir {
				continue
			}
			p.muted("  %-7s %s", o.Status, o.Path)
		}
	}

	title := "Generated"
	if gen.DryRun {
		title = "Dry run"
	}
	p.header(title)
	p.info("Destination: %s", result.ProjectDir)
	p.info("Created: %d  Overwritten: %d  Skipped: %d  Directories: %d",
		gen.FilesCreated, gen.FilesOverwritten, gen.FilesSkipped, gen.DirsCreated)
	if n := len(gen.Errors); n > 0 {
		p.warning("%d entries failed", n)
	} else if gen.DryRun {
		p.success("Nothing was written")
	} else {
		p.success("Project generated")
	}
	debug.DebugValue("[cli] Tree digest", gen.Digest)
}
