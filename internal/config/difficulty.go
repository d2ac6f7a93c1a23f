package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. An empty name leaves the loaded
// gravity untouched and is reported as "".
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// GravityForPreset returns the gravity curve of a preset.
// Normal is the classic curve: 1000ms at level 0, 50ms faster per level, 50ms floor.
func GravityForPreset(preset DifficultyPreset) GravityConfig {
	switch preset {
	case DifficultyEasy:
		return GravityConfig{BaseMS: 1200, StepMS: 40, MinMS: 100}
	case DifficultyHard:
		return GravityConfig{BaseMS: 700, StepMS: 50, MinMS: 40}
	default:
		return GravityConfig{BaseMS: 1000, StepMS: 50, MinMS: 50}
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Only the gravity curve changes; scoring and levels are the same for every preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Gravity = GravityForPreset(preset)
}
