package cli

import (
	"fmt"

	"github.com/runoshun/kanban/internal/app"
	"github.com/runoshun/kanban/internal/domain"
	"github.com/runoshun/kanban/internal/infra/config"
	"github.com/runoshun/kanban/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
// Without a subcommand it prints the effective configuration.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Display effective configuration",
		Long: fmt.Sprintf(`Display the effective configuration as TOML.

Sources, later wins: built-in defaults, the global file
($XDG_CONFIG_HOME/%s/%s) and the file given with --config.
Warnings found while loading are printed as comments.`, domain.AppDirName, domain.ConfigFileName),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			data, err := config.Format(out.Config)
			if err != nil {
				return fmt.Errorf("format config: %w", err)
			}

			w := cmd.OutOrStdout()
			switch {
			case out.GlobalConfig.Path == "":
				_, _ = fmt.Fprintln(w, "# global config: unavailable")
			case out.GlobalConfig.Exists:
				_, _ = fmt.Fprintf(w, "# global config: %s\n", out.GlobalConfig.Path)
			default:
				_, _ = fmt.Fprintf(w, "# global config: %s (not found)\n", out.GlobalConfig.Path)
			}
			for _, warning := range out.Warnings {
				_, _ = fmt.Fprintf(w, "# warning: %s\n", warning)
			}
			_, _ = w.Write(data)
			return nil
		},
	}

	cmd.AddCommand(newConfigInitCommand(c))
	return cmd
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the global config file",
		Long: `Create the global config file with comments and the current settings.

The current seed is written out as [[seed]] entries so it can be edited.
An existing file is left alone unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{
				Config: c.Config,
				Force:  force,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
