// Package config provides YAML-based settings loading for the 2048 game.
package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Board size limits. Larger boards still work but no longer fit a terminal.
const (
	MinBoardSize = 2
	MaxBoardSize = 16
)

var (
	ErrInvalidBoardSize = errors.New("config: board size out of range")
	ErrInvalidPercent   = errors.New("config: four tile percent must be within [0, 100]")
)

// GameSettings are the inputs to board creation and tile spawning.
type GameSettings struct {
	BoardSize       int     `yaml:"board_size" json:"board_size"`
	FourTilePercent float64 `yaml:"four_tile_percent" json:"four_tile_percent"`
}

// Validate reports whether the settings can drive a game.
func (s GameSettings) Validate() error {
	if s.BoardSize < MinBoardSize || s.BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidBoardSize, s.BoardSize, MinBoardSize, MaxBoardSize)
	}
	if s.FourTilePercent < 0 || s.FourTilePercent > 100 {
		return fmt.Errorf("%w: %v", ErrInvalidPercent, s.FourTilePercent)
	}
	return nil
}

// ID identifies a settings combination, e.g. "4x4-25".
// Scores are grouped and compared by this key.
func (s GameSettings) ID() string {
	return fmt.Sprintf("%dx%d-%s", s.BoardSize, s.BoardSize,
		strconv.FormatFloat(s.FourTilePercent, 'f', -1, 64))
}

// String returns a human-readable description.
func (s GameSettings) String() string {
	return fmt.Sprintf("%dx%d board, %v%% fours", s.BoardSize, s.BoardSize, s.FourTilePercent)
}

// ScoresConfig controls score recording.
type ScoresConfig struct {
	MinRecorded int `yaml:"min_recorded_score"` // Finished games at or below this are not recorded
}

// Config is the full contents of settings.yaml.
type Config struct {
	Game   GameSettings `yaml:"game"`
	Scores ScoresConfig `yaml:"scores"`
}

// Validate checks the whole file.
func (c Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if c.Scores.MinRecorded < 0 {
		return fmt.Errorf("config: min_recorded_score must not be negative: %d", c.Scores.MinRecorded)
	}
	return nil
}
