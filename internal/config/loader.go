package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "emojidrop.yaml"

// LoadEmojiDrop loads EmojiDrop configuration.
// Search order: customPath -> ~/.emojidrop/configs/emojidrop.yaml -> ./configs/emojidrop.yaml -> embedded default
// Values missing from a file keep their defaults. A custom path that cannot be
// read, parsed or validated is an error; the other locations are skipped.
func LoadEmojiDrop(customPath string) (EmojiDropConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return EmojiDropConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return EmojiDropConfig{}, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return EmojiDropConfig{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultEmojiDropYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultEmojiDropConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the hardcoded defaults.
func parse(data []byte) (EmojiDropConfig, error) {
	cfg := DefaultEmojiDropConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EmojiDropConfig{}, err
	}
	return cfg, nil
}

// searchPaths returns the non-custom config locations in priority order.
func searchPaths() []string {
	paths := make([]string, 0, 2)
	if p := userConfigPath(ConfigFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".emojidrop", "configs", filename)
}

// Marshal renders a configuration as YAML.
func Marshal(cfg EmojiDropConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}
