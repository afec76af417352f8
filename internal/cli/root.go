// Package cli provides the command-line interface for kanban.
package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/kanban/internal/app"
	"github.com/runoshun/kanban/internal/tui"
	"github.com/spf13/cobra"
)

// ConfigFlag is the persistent flag naming an explicit config file.
// The value is read by main before the container is built.
const ConfigFlag = "config"

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for kanban.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "kanban",
		Short: "Three-column task board in the terminal",
		Long: `kanban is a small task board with To-Do, In-Progress and Done columns.

Running kanban without a subcommand opens the interactive board.
Tasks live in memory only; every run starts from the configured seed.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().StringVar(&configPath, ConfigFlag, "", "Path to a config file (overrides the global config)")

	root.AddCommand(
		newTUICommand(c),
		newShowCommand(c),
		newReplayCommand(c),
		newConfigCommand(c),
	)

	return root
}

// launchTUI runs the interactive board until the user quits.
func launchTUI(c *app.Container) error {
	if c == nil {
		return errors.New("tui: no container")
	}
	state, err := c.NewState()
	if err != nil {
		return fmt.Errorf("seed board: %w", err)
	}

	model := tui.New(state, c.Reducer(), c.Logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
