package cli

import (
	"fmt"

	"github.com/runoshun/kanban/internal/app"
	"github.com/runoshun/kanban/internal/usecase"
	"github.com/spf13/cobra"
)

// newReplayCommand creates the replay command.
func newReplayCommand(c *app.Container) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Apply a YAML script of board messages",
		Long: `Apply each step of a YAML script to a fresh board and print the result.

Each step holds exactly one of:
  set_name: TEXT          set_mandays: TEXT
  select_assignee: NAME   input_assignee: TEXT
  submit: true            advance: INDEX
  retreat: INDEX

An optional top-level seed list replaces the configured seed.`,
		Example: `  kanban replay demo.yaml
  kanban replay demo.yaml --plain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ReplayScriptUseCase().Execute(cmd.Context(), usecase.ReplayScriptInput{
				Path: args[0],
			})
			if err != nil {
				return fmt.Errorf("replay %s: %w", args[0], err)
			}

			tree, err := c.ShowBoardUseCase().Execute(cmd.Context(), usecase.ShowBoardInput{State: out.State})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Applied %d steps\n", out.Applied)
			return printBoard(cmd.OutOrStdout(), tree.Tree, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print a plain table instead of columns")
	return cmd
}
