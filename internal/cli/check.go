package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/scaffold/internal/app"
)

func newCheckCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <template-dir|descriptor>",
		Short: "Validate a template descriptor",
		Long: `Validate the .scaffold.toml descriptor of a local template and list the
parameters it declares. Nothing is rendered or written.

Examples:
  scaffold check ./templates/go-service
  scaffold check ./templates/go-service/.scaffold.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Check(app.CheckOptions{Path: args[0]})
			if err != nil {
				return err
			}

			p := &printer{
				out:     cmd.OutOrStdout(),
				err:     cmd.ErrOrStderr(),
				quiet:   globals.quiet,
				noColor: globals.noColor || os.Getenv("NO_COLOR") != "",
			}
			d := result.Descriptor
			p.success("%s is valid", result.File)
			p.header(d.Title())
			if len(d.Parameters) == 0 {
				p.muted("no parameters")
				return nil
			}
			for _, spec := range d.Parameters {
				line := spec.Key() + " (" + string(spec.Kind()) + ")"
				if spec.Required() {
					line += " required"
				}
				if def, ok := spec.DefaultValue(); ok {
					line += " default=" + def.String()
				}
				p.info("  %s", line)
			}
			return nil
		},
	}
}
