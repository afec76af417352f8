// Package main is the entry point for the kanban CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/kanban/internal/app"
	"github.com/runoshun/kanban/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Create dependency injection container
	container, err := app.New(configPathFromArgs(args))
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// configPathFromArgs returns the value of the --config flag, if any.
// The container needs it before cobra parses the command line.
func configPathFromArgs(args []string) string {
	flag := "--" + cli.ConfigFlag
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, flag+"="); ok {
			return v
		}
	}
	return ""
}
