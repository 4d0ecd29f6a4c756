package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/lillib/internal/sampling"
)

func newShuffleCmd(a *app) *cobra.Command {
	var separator string

	cmd := &cobra.Command{
		Use:   "shuffle <item>...",
		Short: "Print the items in a random order",
		Long: `Shuffle the given items with a Fisher-Yates shuffle and print them.

Examples:
  lillib shuffle alice bob carol dave
  lillib shuffle --separator , a b c d`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator(seedContent(cmd, args))
			if err != nil {
				return err
			}

			shuffled := sampling.ShuffledCopy(g, args)
			a.logger.Debug("shuffled items", "count", len(shuffled), "original", strings.Join(args, " "))

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(shuffled, separator))
			return nil
		},
	}
	cmd.Flags().StringVarP(&separator, "separator", "s", " ", "separator between items")

	return cmd
}
