package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/lillib/internal/sampling"
)

func newSampleCmd(a *app) *cobra.Command {
	var (
		count     int
		replace   bool
		separator string
	)

	cmd := &cobra.Command{
		Use:   "sample <item>...",
		Short: "Draw items at random, with or without replacement",
		Long: `Draw items uniformly at random from the arguments.

Without --replace every drawn value is distinct, so the count may not exceed
the number of distinct items. With --replace each draw covers all items.

Examples:
  # Pick two distinct winners
  lillib sample -n 2 alice bob carol dave

  # Roll a four-sided die five times
  lillib sample -n 5 --replace 1 2 3 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator(seedContent(cmd, args))
			if err != nil {
				return err
			}

			var drawn []string
			if replace {
				drawn, err = sampling.DrawWithReplacement(g, args, count)
			} else {
				drawn, err = sampling.DrawWithoutReplacement(g, args, count)
			}
			if err != nil {
				return fmt.Errorf("failed to sample: %w", err)
			}

			a.logger.Debug("sampled items", "count", count, "replace", replace, "population", len(args))
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(drawn, separator))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of items to draw")
	cmd.Flags().BoolVarP(&replace, "replace", "r", false, "draw with replacement (duplicates allowed)")
	cmd.Flags().StringVarP(&separator, "separator", "s", " ", "separator between items")

	return cmd
}
