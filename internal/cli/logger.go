package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger configures the command logger based on the verbosity flags.
// Quiet wins over verbose.
func newLogger(out io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "lillib",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "lillib",
		Output: out,
		Level:  level,
	})
}
