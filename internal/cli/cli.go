// Package cli implements the gridlock command-line interface.
//
// This package provides commands for counting valid unlock patterns on
// N×N grids, breaking counts down by pattern length, rendering the
// grid's visibility graph, and serving counts over HTTP. The CLI is
// built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - count: Count valid patterns for a grid size and minimum length
//   - table: Break the count down by exact pattern length
//   - graph: Render the grid's direct-visibility graph as DOT or SVG
//   - serve: Expose pattern counts over a small JSON API
//   - tui: Explore counts interactively
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gridlockdev/gridlock/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "gridlock"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the
// configuration loaded from the config file (or defaults when no file
// exists).
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: LoadConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "gridlock",
		Short:        "Gridlock counts valid unlock patterns on N×N grids",
		Long:         `Gridlock counts the distinct "connect-the-dots" unlock patterns of an N×N grid, generalizing the classic Android 3×3 lock screen problem with a symmetry-reducing memoized search.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Commands read the logger from context so tests can inject
			// their own.
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.countCommand())
	root.AddCommand(c.tableCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// configDir returns the configuration directory using the XDG standard
// (~/.config/gridlock/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
