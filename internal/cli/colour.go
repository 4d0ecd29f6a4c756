package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/lillib/internal/colour"
)

func newColourCmd(a *app) *cobra.Command {
	colourCmd := &cobra.Command{
		Use:     "colour",
		Aliases: []string{"color"},
		Short:   "Convert, invert and generate colours",
		Long: `Work with colours written as rgb(r, g, b), rgba(r, g, b, a) or #rrggbb.

With --alpha the rgba() form is used and hex strings carry two extra digits
holding round(alpha*100) in decimal, e.g. rgba(255, 0, 128, 0.5) <-> #ff008050.

Malformed colours are not rejected; unreadable channels print as NaN.

Examples:
  lillib colour random -n 3
  lillib colour invert "rgb(0, 0, 0)"
  lillib colour hex "rgb(255, 0, 128)"
  lillib colour from-hex --alpha "#ff008050"
  lillib colour inspect "rgb(255, 0, 128)" "rgb(12, 34, 56)"`,
	}

	colourCmd.AddCommand(
		newColourRandomCmd(a),
		newColourMapCmd(a, "parse <colour>...", "Print the numeric channels of colours", func(text string, alpha bool) string {
			return formatChannels(colour.ParseColour(text, alpha))
		}),
		newColourFormatCmd(a),
		newColourMapCmd(a, "invert <colour>...", "Invert colours", colour.InvertColour),
		newColourMapCmd(a, "hex <colour>...", "Convert rgb()/rgba() colours to hex", colour.ColourToHex),
		newColourMapCmd(a, "from-hex <hex>...", "Convert hex colours to rgb()/rgba()", colour.HexToColour),
		newColourInspectCmd(a),
	)
	return colourCmd
}

// newColourMapCmd builds a command that applies fn to each argument.
func newColourMapCmd(a *app, use, short string, fn func(string, bool) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), fn(arg, a.cfg.Alpha))
			}
			return nil
		},
	}
}

func newColourRandomCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random colours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateCount(count); err != nil {
				return err
			}
			g, err := a.generator(seedContent(cmd, []string{strconv.Itoa(count)}))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			preview := a.previewEnabled(out)
			for range count {
				writeColourLine(out, colour.RandomColour(g, a.cfg.Alpha), a.cfg.Alpha, preview)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of colours to generate")

	return cmd
}

func newColourFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format <r> <g> <b> [a]",
		Short: "Format numeric channels as rgb()/rgba()",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			channels := make(colour.Channels, len(args))
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid channel %q: %w", arg, err)
				}
				channels[i] = v
			}
			withAlpha := a.cfg.Alpha || len(args) == 4
			fmt.Fprintln(cmd.OutOrStdout(), colour.FormatColour(channels, withAlpha))
			return nil
		},
	}
}

func newColourInspectCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <colour>...",
		Short: "Show every representation of colours",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			descs := make([]colour.Description, len(args))
			for i, arg := range args {
				descs[i] = colour.Describe(arg, a.cfg.Alpha)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := colour.DescriptionsToJSON(descs)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			case "table":
				writeInspectTable(out, descs, a.previewEnabled(out))
			default:
				return fmt.Errorf("unsupported format: %s (supported: table, json)", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json)")

	return cmd
}

func writeInspectTable(out io.Writer, descs []colour.Description, preview bool) {
	table := NewTable([]string{"INPUT", "RGB", "HEX", "INVERTED", "CHANNELS"})
	for _, d := range descs {
		table.AddRow([]string{d.Input, d.RGB, d.Hex, d.Inverted, strings.Join(d.Channels, " ")})
	}

	if !preview {
		fmt.Fprint(out, table.Render())
		return
	}

	for i, line := range table.Lines() {
		// Header and separator rows get a blank gutter the width of a swatch.
		if i < 2 {
			line = strings.Repeat(" ", 8) + "  " + line
		} else {
			rgb := colour.ParseColour(descs[i-2].Input, false).RGB()
			line = colour.ColourPreview(rgb, 8) + "  " + line
		}
		fmt.Fprintln(out, line)
	}
}

func writeColourLine(out io.Writer, text string, alpha, preview bool) {
	if preview {
		rgb := colour.ParseColour(text, alpha).RGB()
		fmt.Fprintf(out, "%s  %s\n", colour.ColourPreviewWithText(rgb, rgb.Hex(), 9), text)
		return
	}
	fmt.Fprintln(out, text)
}

func formatChannels(c colour.Channels) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, " ")
}
