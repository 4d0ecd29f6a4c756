// Package cli provides the command-line interface for lillib.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/lillib/internal/config"
	"github.com/jmylchreest/lillib/internal/random"
	"github.com/jmylchreest/lillib/internal/seed"
	"github.com/jmylchreest/lillib/internal/version"
)

// app carries the state shared by every command of one invocation.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	quiet      bool
	seedValue  int64
	seedMode   string
	alpha      bool
	preview    string

	cfg    config.Config
	logger hclog.Logger
}

// NewRootCmd builds the lillib command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "lillib",
		Short: "Small helpers for random draws, sampling, DOM nodes and colours",
		Long: `lillib bundles a handful of unrelated helpers behind one command:

  rand      uniform floats and integers in a half-open range
  shuffle   shuffle a list of items
  sample    draw items with or without replacement
  colour    convert, invert and generate rgb()/rgba()/hex colours
  html      swap nodes or drop duplicate children in an HTML document

Every random draw can be reproduced with --seed or --seed-mode content.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/lillib/config.yaml)")
	rootCmd.PersistentFlags().Int64Var(&a.seedValue, "seed", 0, "seed for reproducible draws (implies --seed-mode manual)")
	rootCmd.PersistentFlags().Var(newEnumValue(&a.seedMode, string(seed.ModeRandom), "random", "content", "manual"), "seed-mode", "seed mode (random, content, manual)")
	rootCmd.PersistentFlags().BoolVar(&a.alpha, "alpha", false, "read and write rgba() colours and 8-digit hex")
	rootCmd.PersistentFlags().Var(newEnumValue(&a.preview, config.PreviewAuto, config.PreviewAuto, config.PreviewAlways, config.PreviewNever), "preview", "show colour previews (auto, always, never)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRandCmd(a))
	rootCmd.AddCommand(newShuffleCmd(a))
	rootCmd.AddCommand(newSampleCmd(a))
	rootCmd.AddCommand(newColourCmd(a))
	rootCmd.AddCommand(newHTMLCmd(a))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)

	path, required := a.configPath, true
	if path == "" {
		path, required = config.DefaultPath(), false
	}

	cfg, err := config.NewBuilder().WithFile(path, required).WithEnv().Build()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = &a.seedValue
		cfg.SeedMode = string(seed.ModeManual)
	}
	if flags.Changed("seed-mode") {
		cfg.SeedMode = a.seedMode
	}
	if flags.Changed("alpha") {
		cfg.Alpha = a.alpha
	}
	if flags.Changed("preview") {
		cfg.Preview = a.preview
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	a.logger.Debug("configuration loaded", "path", path, "seed_mode", cfg.SeedMode, "alpha", cfg.Alpha, "preview", cfg.Preview)
	return nil
}

// generator returns a seeded generator. content feeds the content seed mode.
func (a *app) generator(content []string) (*random.Generator, error) {
	s, err := seed.Calculate(content, a.cfg.SeedConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to calculate seed: %w", err)
	}
	a.logger.Debug("seeded generator", "mode", a.cfg.SeedMode, "seed", s)
	return random.NewSeeded(s), nil
}

// previewEnabled reports whether colour swatches should be written to w.
func (a *app) previewEnabled(w io.Writer) bool {
	switch a.cfg.Preview {
	case config.PreviewAlways:
		return true
	case config.PreviewNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

// seedContent identifies an invocation for content-based seeding.
func seedContent(cmd *cobra.Command, args []string) []string {
	return append([]string{cmd.CommandPath()}, args...)
}
