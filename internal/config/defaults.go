package config

import (
	_ "embed"
)

//go:embed defaults/emojidrop.yaml
var defaultEmojiDropYAML []byte

// DefaultEmojiDropConfig returns the default EmojiDrop configuration.
func DefaultEmojiDropConfig() EmojiDropConfig {
	return EmojiDropConfig{
		Board: BoardConfig{
			Rows:     10,
			Cols:     6,
			SeedRows: 3,
		},
		Speed: SpeedConfig{
			BaseDropIntervalMs: 400,
			SpeedUpFactor:      1.05,
			MinDropIntervalMs:  100,
		},
		Display: DisplayConfig{
			ComboFlashMs: 600,
		},
	}
}
