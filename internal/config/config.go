// Package config provides YAML-based game configuration loading and
// difficulty presets for blockfall.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/tetris"
)

// Config contains all tunable settings of a game session.
type Config struct {
	Gravity    GravityConfig       `yaml:"gravity"`
	Randomizer string              `yaml:"randomizer"` // "uniform" or "bag"
	Ghost      bool                `yaml:"ghost"`
	Sound      SoundConfig         `yaml:"sound"`
	Keys       map[string][]string `yaml:"keys"` // Action name -> key strings
}

// GravityConfig defines the drop speed curve in milliseconds.
type GravityConfig struct {
	BaseMS int `yaml:"base_ms"` // Delay at level 0
	StepMS int `yaml:"step_ms"` // Reduction per level
	MinMS  int `yaml:"min_ms"`  // Floor
}

// SoundConfig defines audio cue settings.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 (silent) to 1.0
}

// Curve converts the gravity settings into an engine curve.
func (g GravityConfig) Curve() tetris.GravityCurve {
	return tetris.GravityCurve{
		Base: time.Duration(g.BaseMS) * time.Millisecond,
		Step: time.Duration(g.StepMS) * time.Millisecond,
		Min:  time.Duration(g.MinMS) * time.Millisecond,
	}
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if c.Gravity.BaseMS <= 0 {
		return fmt.Errorf("config: gravity.base_ms must be positive, got %d", c.Gravity.BaseMS)
	}
	if c.Gravity.MinMS <= 0 {
		return fmt.Errorf("config: gravity.min_ms must be positive, got %d", c.Gravity.MinMS)
	}
	if c.Gravity.StepMS < 0 {
		return fmt.Errorf("config: gravity.step_ms must not be negative, got %d", c.Gravity.StepMS)
	}
	if c.Gravity.MinMS > c.Gravity.BaseMS {
		return fmt.Errorf("config: gravity.min_ms (%d) exceeds base_ms (%d)", c.Gravity.MinMS, c.Gravity.BaseMS)
	}
	switch c.Randomizer {
	case "", tetris.RandomizerUniform, tetris.RandomizerBag:
	default:
		return fmt.Errorf("config: unknown randomizer %q", c.Randomizer)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("config: sound.volume must be within [0, 1], got %v", c.Sound.Volume)
	}
	return nil
}

// Picker builds the piece picker selected by the configuration.
func (c Config) Picker(seed int64) (tetris.Picker, error) {
	return tetris.NewPicker(c.Randomizer, seed)
}
