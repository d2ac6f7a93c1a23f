package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/blockfall.yaml.
func Default() Config {
	return Config{
		Gravity: GravityConfig{
			BaseMS: 1000,
			StepMS: 50,
			MinMS:  50,
		},
		Randomizer: "uniform",
		Ghost:      true,
		Sound: SoundConfig{
			Enabled: false,
			Volume:  0.5,
		},
		Keys: DefaultKeys(),
	}
}

// DefaultKeys returns the default key bindings by action name.
func DefaultKeys() map[string][]string {
	return map[string][]string{
		"left":       {"left", "h"},
		"right":      {"right", "l"},
		"soft_drop":  {"down", "j"},
		"rotate":     {"up", "k"},
		"hard_drop":  {" "},
		"pause":      {"p"},
		"restart":    {"r"},
		"screenshot": {"ctrl+s"},
		"back":       {"esc", "b"},
		"quit":       {"q", "ctrl+c"},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
