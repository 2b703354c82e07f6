package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridlockdev/gridlock/pkg/pattern"
)

// tableCommand creates the table command, which breaks the total count
// down by pattern length.
func (c *CLI) tableCommand() *cobra.Command {
	var grid, minLength int

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show pattern counts broken down by length",
		Long: `Show the number of valid unlock patterns of each exact length.

For each length from the minimum up to the number of grid points, the
table lists how many distinct valid patterns use exactly that many
points, followed by the total.`,
		Example: `  # Per-length breakdown for the classic 3×3 lock screen
  gridlock table

  # Include the short patterns Android rejects
  gridlock table --min-length 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			logger.Debug("building length table", "grid", grid, "minLength", minLength)

			prog := newProgress(logger)
			counter := pattern.NewCounter()
			counts, err := counter.CountByLength(grid)
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render(fmt.Sprintf("Patterns on a %d×%d grid", grid, grid)))

			var total int64
			for i, n := range counts {
				length := i + 1
				if length < minLength {
					continue
				}
				printKeyValue(fmt.Sprintf("length %d", length), StyleNumber.Render(fmt.Sprintf("%d", n)))
				total += n
			}
			printKeyValue("total", StyleNumber.Render(fmt.Sprintf("%d", total)))

			prog.done(fmt.Sprintf("Counted %d patterns", total))
			return nil
		},
	}

	cmd.Flags().IntVarP(&grid, "grid", "g", c.Config.Grid, "grid edge length")
	cmd.Flags().IntVarP(&minLength, "min-length", "m", c.Config.MinLength, "minimum pattern length")

	return cmd
}
