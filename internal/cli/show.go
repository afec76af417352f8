package cli

import (
	"fmt"
	"io"

	"github.com/runoshun/kanban/internal/app"
	"github.com/runoshun/kanban/internal/tui"
	"github.com/runoshun/kanban/internal/usecase"
	"github.com/runoshun/kanban/internal/view"
	"github.com/spf13/cobra"
)

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the initial board",
		Long: `Print the board as it looks on startup.

The board is seeded from the [[seed]] entries in config, or from the
built-in example tasks when none are configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowBoardUseCase().Execute(cmd.Context(), usecase.ShowBoardInput{})
			if err != nil {
				return err
			}
			return printBoard(cmd.OutOrStdout(), out.Tree, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print a plain table instead of columns")
	return cmd
}

// printBoard writes tree as styled columns or as a plain table.
func printBoard(w io.Writer, tree view.Tree, plain bool) error {
	if plain {
		_, err := io.WriteString(w, tui.RenderPlain(tree))
		return err
	}
	_, err := fmt.Fprintln(w, tui.RenderBoard(tui.DefaultStyles(), tree, 0))
	return err
}
