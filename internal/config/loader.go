package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration of a game variant and validates it.
// Search order: customPath -> ~/.spikelane/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Files are decoded over the hard-coded defaults, so they only need the keys they change.
func Load(gameID, customPath string) (SpikesConfig, error) {
	base, ok := DefaultFor(gameID)
	if !ok {
		return SpikesConfig{}, fmt.Errorf("config: unknown game %q", gameID)
	}

	cfg, err := load(gameID, customPath, base)
	if err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(gameID, customPath string, base SpikesConfig) (SpikesConfig, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data, base)
		if err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data, base); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := Parse(data, base); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(GetDefaultYAML(gameID), base)
	if err != nil {
		return base, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over base. Key bindings are merged per action
// instead of replacing the whole table.
func Parse(data []byte, base SpikesConfig) (SpikesConfig, error) {
	cfg := base
	cfg.Keys = nil
	cfg.Spawn.Pattern = append([][]int(nil), base.Spawn.Pattern...)

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	cfg.Keys = base.Keys.Merge(cfg.Keys)
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spikelane", "configs", filename)
}

// ParsePreset converts a flag value into a DifficultyPreset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", name)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SpikesConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust spawning based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.MinGap++
	case DifficultyHard:
		if cfg.Spawn.MinGap > 0 {
			cfg.Spawn.MinGap--
		}
		cfg.Spawn.StartDelay /= 2
	}
}
