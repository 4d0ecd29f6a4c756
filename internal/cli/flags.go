package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// enumValue is a string flag restricted to a fixed set of choices.
type enumValue struct {
	target  *string
	choices []string
}

var _ pflag.Value = (*enumValue)(nil)

func newEnumValue(target *string, def string, choices ...string) *enumValue {
	*target = def
	return &enumValue{target: target, choices: choices}
}

func (e *enumValue) String() string {
	return *e.target
}

func (e *enumValue) Set(s string) error {
	if !slices.Contains(e.choices, s) {
		return fmt.Errorf("must be one of %s", strings.Join(e.choices, ", "))
	}
	*e.target = s
	return nil
}

func (e *enumValue) Type() string {
	return "string"
}
