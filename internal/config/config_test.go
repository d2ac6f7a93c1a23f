package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/tetris"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultCurveIsClassic(t *testing.T) {
	curve := Default().Gravity.Curve()
	for _, level := range []int{0, 1, 5, 18, 19, 40} {
		assert.Equal(t, tetris.DropInterval(level), curve.Interval(level), "level %d", level)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("randomizer: bag\nkeys:\n  rotate: [\"x\"]\n"))
	require.NoError(t, err)

	assert.Equal(t, "bag", cfg.Randomizer)
	assert.Equal(t, 1000, cfg.Gravity.BaseMS)
	assert.Equal(t, []string{"x"}, cfg.Keys["rotate"])
	assert.Equal(t, []string{"left", "h"}, cfg.Keys["left"])
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("gravity: [oops"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"bag randomizer", func(c *Config) { c.Randomizer = "bag" }, false},
		{"zero base", func(c *Config) { c.Gravity.BaseMS = 0 }, true},
		{"zero floor", func(c *Config) { c.Gravity.MinMS = 0 }, true},
		{"negative step", func(c *Config) { c.Gravity.StepMS = -5 }, true},
		{"floor above base", func(c *Config) { c.Gravity.MinMS = 2000 }, true},
		{"unknown randomizer", func(c *Config) { c.Randomizer = "tgm" }, true},
		{"loud volume", func(c *Config) { c.Sound.Volume = 1.5 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gravity:\n  base_ms: 800\n  step_ms: 20\n  min_ms: 100\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800*time.Millisecond, cfg.Gravity.Curve().Interval(0))
	assert.Equal(t, 100*time.Millisecond, cfg.Gravity.Curve().Interval(50))
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("randomizer: shuffle\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "unknown randomizer")
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", FileName), []byte("ghost: false\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Ghost)
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		level0 time.Duration
	}{
		{DifficultyEasy, 1200 * time.Millisecond},
		{DifficultyNormal, time.Second},
		{DifficultyHard, 700 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			assert.Equal(t, tc.level0, cfg.Gravity.Curve().Interval(0))
			assert.NoError(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.Gravity.BaseMS = 321
	ApplyPreset(&cfg, "")
	assert.Equal(t, 321, cfg.Gravity.BaseMS, "empty preset keeps loaded gravity")
}

func TestParseDifficulty(t *testing.T) {
	p, err := ParseDifficulty("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParseDifficulty("nightmare")
	assert.Error(t, err)
}

func TestConfigPicker(t *testing.T) {
	cfg := Default()
	cfg.Randomizer = "bag"
	p, err := cfg.Picker(1)
	require.NoError(t, err)
	_, ok := p.(*tetris.BagPicker)
	assert.True(t, ok)
}
