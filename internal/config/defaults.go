package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/spikes.yaml
var defaultSpikesYAML []byte

//go:embed defaults/lanes.yaml
var defaultLanesYAML []byte

// DefaultSpikesConfig returns the default configuration of the 6x3 spike game.
func DefaultSpikesConfig() SpikesConfig {
	return SpikesConfig{
		Grid: GridConfig{
			Rows:    6,
			Columns: 3,
		},
		Player: PlayerConfig{
			StartColumn: 1,
		},
		Timing: TimingConfig{
			TickInterval: 500 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			PerTick:  1,
			PerDodge: 5,
		},
		Spawn: SpawnConfig{
			Mode:       SpawnRandom,
			Chance:     0.5,
			MinGap:     1,
			StartDelay: 20, // 10 seconds at 500ms
		},
		Keys: DefaultKeyBindings(),
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				ChanceBoost:  0.4,
				GapReduction: 1,
			},
		},
	}
}

// DefaultLanesConfig returns the default configuration of the 5x5 lane game.
func DefaultLanesConfig() SpikesConfig {
	return SpikesConfig{
		Grid: GridConfig{
			Rows:    5,
			Columns: 5,
		},
		Player: PlayerConfig{
			StartColumn: 2,
		},
		Timing: TimingConfig{
			TickInterval: 500 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			PerTick:  1,
			PerDodge: 2,
		},
		Spawn: SpawnConfig{
			Mode:       SpawnRandom,
			Chance:     0.7,
			MinGap:     0,
			StartDelay: 4,
		},
		Keys: DefaultKeyBindings(),
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 1200, // 10 minutes at 500ms
			},
			Scaling: ScalingConfig{
				ChanceBoost:  0.3,
				GapReduction: 0,
			},
		},
	}
}

// DefaultFor returns the hard-coded defaults for a game ID.
func DefaultFor(gameID string) (SpikesConfig, bool) {
	switch gameID {
	case "spikes":
		return DefaultSpikesConfig(), true
	case "lanes":
		return DefaultLanesConfig(), true
	default:
		return SpikesConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "spikes":
		return defaultSpikesYAML
	case "lanes":
		return defaultLanesYAML
	default:
		return nil
	}
}
