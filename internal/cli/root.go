package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/scaffold/internal/app"
	"github.com/tacogips/scaffold/internal/debug"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	debug      bool
	noColor    bool
	quiet      bool
}

// Execute runs the command line and returns the process exit code.
// This is called by main.main().
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	debug.Sync()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return app.ExitCode(err)
	}
	return app.ExitOK
}

func newRootCmd() *cobra.Command {
	globals := &globalOptions{}
	genOpts := &generateOptions{}

	rootCmd := &cobra.Command{
		Use:   "scaffold [template]",
		Short: "Generate projects from templates",
		Long: `scaffold generates a project from a template directory or git repository.

The template root holds a .scaffold.toml descriptor that declares the
parameters to ask for, the files to exclude and the notes to show once the
project is generated. Every file and path in the template is rendered with
the collected values.

Running scaffold with a template is the same as "scaffold generate".

Examples:
  scaffold ./templates/go-service
  scaffold gh:acme/templates//rust-cli --name "My Tool"
  scaffold git@github.com:acme/templates.git --ref main --append -d ./services`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug.SetOutput(cmd.ErrOrStderr())
			debug.SetDebug(globals.debug)
			debug.SetNoColor(globals.noColor)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runGenerate(cmd, globals, genOpts, args[0])
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return app.NewValidationError(err.Error(), nil)
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&globals.configPath, FlagConfig, "", DescConfig)
	pf.BoolVar(&globals.debug, FlagDebug, false, DescDebug)
	pf.BoolVar(&globals.noColor, FlagNoColor, false, DescNoColor)
	pf.BoolVarP(&globals.quiet, FlagQuiet, "q", false, DescQuiet)

	addGenerateFlags(rootCmd, genOpts)

	rootCmd.AddCommand(newGenerateCmd(globals))
	rootCmd.AddCommand(newCheckCmd(globals))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}
