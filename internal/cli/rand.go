package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRandCmd(a *app) *cobra.Command {
	var count int

	randCmd := &cobra.Command{
		Use:   "rand",
		Short: "Draw uniform random numbers from [min, max)",
		Long: `Draw uniformly distributed numbers from the half-open range [min, max).

Examples:
  # A float between 0 and 1
  lillib rand float 0 1

  # Ten dice rolls, reproducible
  lillib rand int 1 7 -n 10 --seed 42

  # Negative bounds need -- to stop flag parsing
  lillib rand int -- -10 10`,
	}
	randCmd.PersistentFlags().IntVarP(&count, "count", "n", 1, "number of values to draw")

	floatCmd := &cobra.Command{
		Use:   "float <min> <max>",
		Short: "Draw floats from [min, max)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minVal, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid min: %w", err)
			}
			maxVal, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid max: %w", err)
			}
			if err := validateCount(count); err != nil {
				return err
			}

			g, err := a.generator(seedContent(cmd, args))
			if err != nil {
				return err
			}
			for range count {
				v, err := g.Float(minVal, maxVal)
				if err != nil {
					return fmt.Errorf("failed to draw float: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'f', -1, 64))
			}
			return nil
		},
	}

	intCmd := &cobra.Command{
		Use:   "int <min> <max>",
		Short: "Draw integers from [min, max)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minVal, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid min: %w", err)
			}
			maxVal, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid max: %w", err)
			}
			if err := validateCount(count); err != nil {
				return err
			}

			g, err := a.generator(seedContent(cmd, args))
			if err != nil {
				return err
			}
			for range count {
				v, err := g.Int(minVal, maxVal)
				if err != nil {
					return fmt.Errorf("failed to draw integer: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}

	randCmd.AddCommand(floatCmd, intCmd)
	return randCmd
}

func validateCount(count int) error {
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}
	return nil
}
