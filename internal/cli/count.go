package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridlockdev/gridlock/pkg/pattern"
)

// spinnerThreshold is the grid size from which counting takes long
// enough to warrant a progress indicator.
const spinnerThreshold = 4

// countCommand creates the count command, the primary entry point.
func (c *CLI) countCommand() *cobra.Command {
	var grid, minLength int
	var exhaustive bool

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count valid unlock patterns",
		Long: `Count the distinct valid unlock patterns on an N×N grid.

A pattern connects distinct grid points in sequence; a stroke to a
non-adjacent point may not jump over a dot that has not been visited
yet. Patterns shorter than the minimum length do not count.

The default engine deduplicates symmetric partial patterns and
memoizes subtree counts, which keeps 4×4 and 5×5 grids tractable.
--exhaustive switches to the plain tree search, practical only up
to 3×3, mainly useful for cross-checking.`,
		Example: `  # The classic Android lock screen answer (389112)
  gridlock count

  # A 4×4 grid with patterns of at least 6 points
  gridlock count --grid 4 --min-length 6

  # Cross-check the 3×3 result without memoization
  gridlock count --exhaustive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			logger.Debug("counting patterns", "grid", grid, "minLength", minLength, "exhaustive", exhaustive)

			var spinner *Spinner
			if !exhaustive && grid >= spinnerThreshold {
				spinner = newSpinnerWithContext(cmd.Context(), fmt.Sprintf("counting %d×%d patterns...", grid, grid))
				spinner.Start()
			}

			prog := newProgress(logger)
			counter := pattern.NewCounter()

			var count int64
			var err error
			if exhaustive {
				count, err = pattern.CountExhaustive(grid, minLength)
			} else {
				count, err = counter.CountValidPatterns(grid, minLength)
			}
			if spinner != nil {
				spinner.Stop()
			}
			if err != nil {
				if errors.Is(err, pattern.ErrOverflow) {
					return fmt.Errorf("count exceeds int64 for %d×%d grid: %w", grid, grid, err)
				}
				return err
			}

			fmt.Printf("%d (%d ms)\n", count, prog.elapsed().Milliseconds())
			printDetail("grid %d×%d, minimum length %d", grid, grid, minLength)
			if !exhaustive {
				logger.Debug("search finished", "memoizedStates", counter.CacheSize())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&grid, "grid", "g", c.Config.Grid, "grid edge length")
	cmd.Flags().IntVarP(&minLength, "min-length", "m", c.Config.MinLength, "minimum pattern length")
	cmd.Flags().BoolVar(&exhaustive, "exhaustive", false, "use the unmemoized tree search (3×3 only in practice)")

	return cmd
}
