package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/lillib/internal/seed"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, string(seed.ModeRandom), cfg.SeedMode)
	assert.Equal(t, PreviewAuto, cfg.Preview)
	assert.False(t, cfg.Alpha)
}

func TestBuildFromFile(t *testing.T) {
	path := writeConfig(t, "seed_mode: manual\nseed: 1234\nalpha: true\npreview: never\n")

	cfg, err := NewBuilder().WithFile(path, true).Build()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(1234), *cfg.Seed)
	assert.Equal(t, "manual", cfg.SeedMode)
	assert.True(t, cfg.Alpha)
	assert.Equal(t, PreviewNever, cfg.Preview)

	sc := cfg.SeedConfig()
	assert.Equal(t, seed.ModeManual, sc.Mode)
}

func TestFileSeedImpliesManualMode(t *testing.T) {
	cfg, err := NewBuilder().WithFile(writeConfig(t, "seed: 42\n"), true).Build()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, string(seed.ModeManual), cfg.SeedMode)

	// An explicit mode still wins.
	cfg, err = NewBuilder().WithFile(writeConfig(t, "seed: 42\nseed_mode: content\n"), true).Build()
	require.NoError(t, err)
	assert.Equal(t, string(seed.ModeContent), cfg.SeedMode)
}

func TestBuildMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := NewBuilder().WithFile(missing, false).Build()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = NewBuilder().WithFile(missing, true).Build()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildInvalidYAML(t *testing.T) {
	path := writeConfig(t, "alpha: [not, a, bool\n")

	_, err := NewBuilder().WithFile(path, false).Build()
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "alpha: false\npreview: always\n")
	t.Setenv("LILLIB_SEED", "77")
	t.Setenv("LILLIB_ALPHA", "true")
	t.Setenv("LILLIB_PREVIEW", "never")

	cfg, err := NewBuilder().WithFile(path, true).WithEnv().Build()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "manual", cfg.SeedMode)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(77), *cfg.Seed)
	assert.True(t, cfg.Alpha)
	assert.Equal(t, PreviewNever, cfg.Preview)
}

func TestEnvErrors(t *testing.T) {
	t.Setenv("LILLIB_SEED", "abc")
	_, err := NewBuilder().WithEnv().Build()
	assert.Error(t, err)

	t.Setenv("LILLIB_SEED", "")
	t.Setenv("LILLIB_ALPHA", "maybe")
	_, err = NewBuilder().WithEnv().Build()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	seedValue := int64(1)
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "default", cfg: Default()},
		{name: "content", cfg: Config{SeedMode: "content", Preview: PreviewAlways}},
		{name: "manual with seed", cfg: Config{SeedMode: "manual", Seed: &seedValue, Preview: PreviewAuto}},
		{name: "manual without seed", cfg: Config{SeedMode: "manual", Preview: PreviewAuto}, wantErr: true},
		{name: "bad mode", cfg: Config{SeedMode: "filepath", Preview: PreviewAuto}, wantErr: true},
		{name: "bad preview", cfg: Config{SeedMode: "random", Preview: "sometimes"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
