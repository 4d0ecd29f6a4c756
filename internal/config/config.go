// Package config loads lillib settings from defaults, a YAML file and
// LILLIB_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/lillib/internal/seed"
)

// Preview modes for terminal colour swatches.
const (
	PreviewAuto   = "auto"
	PreviewAlways = "always"
	PreviewNever  = "never"
)

// Config holds user settings shared by all commands.
type Config struct {
	// SeedMode selects how the random seed is derived (random, content, manual).
	SeedMode string `yaml:"seed_mode"`
	// Seed is the seed value used in manual mode. Setting it in the config
	// file or LILLIB_SEED without a seed mode selects manual mode.
	Seed *int64 `yaml:"seed,omitempty"`
	// Alpha makes colour commands read and write rgba()/8-digit hex by default.
	Alpha bool `yaml:"alpha"`
	// Preview controls ANSI colour swatches (auto, always, never).
	Preview string `yaml:"preview"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SeedMode: string(seed.ModeRandom),
		Preview:  PreviewAuto,
	}
}

// Validate checks the configuration for inconsistent values.
func (c Config) Validate() error {
	mode, err := seed.ParseMode(c.SeedMode)
	if err != nil {
		return err
	}
	if mode == seed.ModeManual && c.Seed == nil {
		return fmt.Errorf("seed_mode manual requires a seed value")
	}
	if !slices.Contains([]string{PreviewAuto, PreviewAlways, PreviewNever}, c.Preview) {
		return fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", c.Preview)
	}
	return nil
}

// SeedConfig converts the seed settings for the seed package.
func (c Config) SeedConfig() seed.Config {
	return seed.Config{Mode: seed.Mode(c.SeedMode), Value: c.Seed}
}

// DefaultPath returns the per-user config file location, or "" if the user
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lillib", "config.yaml")
}

// Builder provides a fluent interface for assembling a Config.
type Builder struct {
	config   Config
	filePath string
	required bool
	useEnv   bool
}

// NewBuilder creates a Builder starting from Default().
func NewBuilder() *Builder {
	return &Builder{config: Default()}
}

// WithConfig replaces the base configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithFile layers a YAML file over the base configuration. A missing file is
// ignored unless required is set.
func (b *Builder) WithFile(path string, required bool) *Builder {
	b.filePath = path
	b.required = required
	return b
}

// WithEnv layers LILLIB_SEED_MODE, LILLIB_SEED, LILLIB_ALPHA and
// LILLIB_PREVIEW over the file settings.
func (b *Builder) WithEnv() *Builder {
	b.useEnv = true
	return b
}

// Build assembles the configuration. Env overrides the file, which overrides
// the base configuration. The result is not validated, so callers can still
// apply flag overrides before calling Validate.
func (b *Builder) Build() (Config, error) {
	config := b.config

	if b.filePath != "" {
		if err := loadFile(b.filePath, &config); err != nil {
			if !errors.Is(err, os.ErrNotExist) || b.required {
				return Config{}, err
			}
		}
	}

	if b.useEnv {
		if err := applyEnv(&config); err != nil {
			return Config{}, err
		}
	}

	return config, nil
}

func loadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var set struct {
		SeedMode *string `yaml:"seed_mode"`
		Seed     *int64  `yaml:"seed"`
	}
	if err := yaml.Unmarshal(data, &set); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if set.Seed != nil && set.SeedMode == nil {
		config.SeedMode = string(seed.ModeManual)
	}
	return nil
}

func applyEnv(config *Config) error {
	if v := os.Getenv("LILLIB_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid LILLIB_SEED: %w", err)
		}
		config.Seed = &n
		config.SeedMode = string(seed.ModeManual)
	}
	if v := os.Getenv("LILLIB_SEED_MODE"); v != "" {
		config.SeedMode = v
	}
	if v := os.Getenv("LILLIB_ALPHA"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid LILLIB_ALPHA: %w", err)
		}
		config.Alpha = b
	}
	if v := os.Getenv("LILLIB_PREVIEW"); v != "" {
		config.Preview = v
	}
	return nil
}
