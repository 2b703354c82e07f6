package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gridlockdev/gridlock/pkg/pattern"
)

// graphCommand creates the graph command, which renders the grid's
// visibility graph (which points see each other without an
// intermediate dot) as DOT or SVG.
func (c *CLI) graphCommand() *cobra.Command {
	var grid int
	var output string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the grid's visibility graph",
		Long: `Render the visibility graph of an N×N grid.

Two points are connected when a stroke between them passes over no
intermediate dot, i.e. when they can follow each other in a pattern
regardless of which points have been visited. The output format is
chosen by the file extension: .svg renders through Graphviz, anything
else (or stdout) emits DOT source.`,
		Example: `  # DOT source on stdout
  gridlock graph

  # Rendered SVG for a 4×4 grid
  gridlock graph --grid 4 -o visibility.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			logger.Debug("rendering visibility graph", "grid", grid, "output", output)

			var data []byte
			if strings.EqualFold(filepath.Ext(output), ".svg") {
				svg, err := pattern.RenderVisibilitySVG(cmd.Context(), grid)
				if err != nil {
					return fmt.Errorf("rendering SVG: %w", err)
				}
				data = svg
			} else {
				data = []byte(pattern.VisibilityDOT(grid))
			}

			if output == "" {
				fmt.Print(string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			printSuccess("Visibility graph written")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&grid, "grid", "g", c.Config.Grid, "grid edge length")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.svg renders, otherwise DOT; default stdout)")

	return cmd
}
