// Package config provides YAML-based game configuration loading for EmojiDrop.
package config

import (
	"errors"
	"fmt"
	"math"
)

// MaxBoardSize bounds both board dimensions.
const MaxBoardSize = 64

// EmojiDropConfig contains all configuration for the EmojiDrop game.
type EmojiDropConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Speed   SpeedConfig   `yaml:"speed"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the well dimensions.
type BoardConfig struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	SeedRows int `yaml:"seed_rows"` // Bottom rows pre-filled at start
}

// SpeedConfig defines the drop cadence and its single speed-up rule.
type SpeedConfig struct {
	BaseDropIntervalMs float64 `yaml:"base_drop_interval_ms"`
	SpeedUpFactor      float64 `yaml:"speed_up_factor"` // Interval divisor per clearing landing
	MinDropIntervalMs  float64 `yaml:"min_drop_interval_ms"`
}

// DisplayConfig defines presentation-only timings.
type DisplayConfig struct {
	ComboFlashMs int `yaml:"combo_flash_ms"` // How long the combo banner stays highlighted
}

// Validate checks the configuration for values the engine cannot run with.
func (c EmojiDropConfig) Validate() error {
	var errs []error

	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		errs = append(errs, fmt.Errorf("board: rows and cols must be positive, got %dx%d", c.Board.Rows, c.Board.Cols))
	}
	if c.Board.Rows > MaxBoardSize || c.Board.Cols > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board: rows and cols must be at most %d, got %dx%d", MaxBoardSize, c.Board.Rows, c.Board.Cols))
	}
	if c.Board.SeedRows < 0 || c.Board.SeedRows > c.Board.Rows {
		errs = append(errs, fmt.Errorf("board: seed_rows must be between 0 and rows, got %d", c.Board.SeedRows))
	}
	if !finite(c.Speed.BaseDropIntervalMs) || c.Speed.BaseDropIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("speed: base_drop_interval_ms must be positive, got %v", c.Speed.BaseDropIntervalMs))
	}
	if !finite(c.Speed.MinDropIntervalMs) || c.Speed.MinDropIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("speed: min_drop_interval_ms must be positive, got %v", c.Speed.MinDropIntervalMs))
	}
	if c.Speed.MinDropIntervalMs > c.Speed.BaseDropIntervalMs {
		errs = append(errs, fmt.Errorf("speed: min_drop_interval_ms (%v) exceeds base_drop_interval_ms (%v)",
			c.Speed.MinDropIntervalMs, c.Speed.BaseDropIntervalMs))
	}
	if !finite(c.Speed.SpeedUpFactor) || c.Speed.SpeedUpFactor < 1 {
		errs = append(errs, fmt.Errorf("speed: speed_up_factor must be >= 1, got %v", c.Speed.SpeedUpFactor))
	}
	if c.Display.ComboFlashMs < 0 {
		errs = append(errs, fmt.Errorf("display: combo_flash_ms must not be negative, got %d", c.Display.ComboFlashMs))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid emojidrop config: %w", errors.Join(errs...))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
