// Package config provides YAML-based game configuration loading and
// difficulty management for the spike lane games.
package config

import "time"

// SpikesConfig contains all configuration for a spike lane game variant.
type SpikesConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Player     PlayerConfig     `yaml:"player"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Keys       KeyBindings      `yaml:"keys"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the lane grid dimensions.
type GridConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// PlayerConfig defines where the player starts.
type PlayerConfig struct {
	StartColumn int `yaml:"start_column"`
}

// TimingConfig defines the simulation clock.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"` // e.g. "500ms"
}

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	PerTick  int `yaml:"per_tick"`
	PerDodge int `yaml:"per_dodge"` // Bonus for each spike scrolled past the player
}

// Spawn modes.
const (
	SpawnRandom  = "random"
	SpawnPattern = "pattern"
)

// SpawnConfig defines how new spike rows are generated at the far edge.
type SpawnConfig struct {
	Mode       string  `yaml:"mode"`        // "random" or "pattern"
	Chance     float64 `yaml:"chance"`      // Probability of a spike on an eligible tick
	MinGap     int     `yaml:"min_gap"`     // Empty rows required between spikes
	StartDelay int     `yaml:"start_delay"` // Ticks without spawns after the start
	Pattern    [][]int `yaml:"pattern"`     // Occupied columns per tick, cycled
}

// KeyBindings maps an action name ("left", "pause", ...) to the keys that trigger it.
type KeyBindings map[string][]string

// DefaultKeyBindings returns the bindings every game starts from.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		"left":    {"left", "a"},
		"right":   {"right", "d"},
		"pause":   {"p"},
		"restart": {"r"},
		"back":    {"esc", "b"},
		"quit":    {"q", "ctrl+c"},
	}
}

// Merge returns a copy of k with the actions defined in override replaced.
func (k KeyBindings) Merge(override KeyBindings) KeyBindings {
	merged := make(KeyBindings, len(k)+len(override))
	for action, keys := range k {
		merged[action] = append([]string(nil), keys...)
	}
	for action, keys := range override {
		if len(keys) == 0 {
			continue
		}
		merged[action] = append([]string(nil), keys...)
	}
	return merged
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ChanceBoost  float64 `yaml:"chance_boost"`  // Spawn chance added at max difficulty
	GapReduction int     `yaml:"gap_reduction"` // Minimum gap reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
