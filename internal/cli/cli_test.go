package cli

import (
	"io"
	"testing"
)

func newTestCLI() *CLI {
	return &CLI{
		Logger: newLogger(io.Discard, LogInfo),
		Config: DefaultConfig(),
	}
}

func TestRootCommand(t *testing.T) {
	c := newTestCLI()
	root := c.RootCommand()

	if root.Use != "gridlock" {
		t.Errorf("Use = %q, want %q", root.Use, "gridlock")
	}

	want := []string{"count", "table", "graph", "serve", "tui", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command should have subcommand %q", name)
		}
	}
}

func TestCountCommandFlagDefaults(t *testing.T) {
	c := newTestCLI()
	c.Config.Grid = 4
	c.Config.MinLength = 6

	cmd := c.countCommand()

	if got := cmd.Flags().Lookup("grid").DefValue; got != "4" {
		t.Errorf("--grid default = %q, want %q", got, "4")
	}
	if got := cmd.Flags().Lookup("min-length").DefValue; got != "6" {
		t.Errorf("--min-length default = %q, want %q", got, "6")
	}
	if cmd.Flags().Lookup("exhaustive") == nil {
		t.Error("count command should have an --exhaustive flag")
	}
}

func TestServeCommandFlagDefaults(t *testing.T) {
	c := newTestCLI()
	c.Config.Serve.Addr = ":9999"

	cmd := c.serveCommand()

	if got := cmd.Flags().Lookup("addr").DefValue; got != ":9999" {
		t.Errorf("--addr default = %q, want %q", got, ":9999")
	}
}

func TestSetLogLevel(t *testing.T) {
	c := newTestCLI()

	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want %v", c.Logger.GetLevel(), LogDebug)
	}

	c.SetLogLevel(LogInfo)
	if c.Logger.GetLevel() != LogInfo {
		t.Errorf("level = %v, want %v", c.Logger.GetLevel(), LogInfo)
	}
}
