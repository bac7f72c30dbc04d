package config

import (
	_ "embed"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultGameSettings returns the classic 4x4 board with a 25% chance of fours.
func DefaultGameSettings() GameSettings {
	return GameSettings{
		BoardSize:       4,
		FourTilePercent: 25,
	}
}

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Game: DefaultGameSettings(),
		Scores: ScoresConfig{
			MinRecorded: 500,
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
