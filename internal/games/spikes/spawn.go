package spikes

import (
	"github.com/vovakirdan/spikelane/internal/config"
	"github.com/vovakirdan/spikelane/internal/lane"
)

// EngineConfig translates a game config into an engine config.
// The difficulty manager, when given, tunes random spawning as the score grows.
func EngineConfig(cfg config.SpikesConfig, seed int64, difficulty *config.DifficultyManager) lane.Config {
	return lane.Config{
		Rows:          cfg.Grid.Rows,
		Columns:       cfg.Grid.Columns,
		StartColumn:   cfg.Player.StartColumn,
		TickInterval:  cfg.Timing.TickInterval,
		ScorePerTick:  cfg.Scoring.PerTick,
		ScorePerDodge: cfg.Scoring.PerDodge,
		Spawner:       newSpawner(cfg.Spawn, seed, difficulty),
	}
}

func newSpawner(s config.SpawnConfig, seed int64, difficulty *config.DifficultyManager) lane.SpawnPolicy {
	if s.Mode == config.SpawnPattern {
		return delayed(lane.NewPatternSpawner(s.Pattern), s.StartDelay)
	}

	opts := lane.RandomOptions{
		Seed:       seed,
		Chance:     s.Chance,
		MinGap:     s.MinGap,
		StartDelay: s.StartDelay,
	}
	if difficulty != nil && difficulty.IsEnabled() {
		opts.Tuning = func(ctx lane.SpawnContext) (float64, int) {
			return difficulty.SpawnChance(s.Chance, ctx.Score, ctx.Tick),
				difficulty.MinGap(s.MinGap, ctx.Score, ctx.Tick)
		}
	}
	return lane.NewRandomSpawner(opts)
}

// delayed holds a policy back for the first delay ticks. The wrapped policy
// sees tick numbers counted from the end of the delay.
func delayed(p lane.SpawnPolicy, delay int) lane.SpawnPolicy {
	if delay <= 0 {
		return p
	}
	return lane.SpawnFunc(func(ctx lane.SpawnContext) ([]int, error) {
		if ctx.Tick <= delay {
			return nil, nil
		}
		ctx.Tick -= delay
		return p.NextRow(ctx)
	})
}
