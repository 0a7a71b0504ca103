package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/spikelane/internal/core"
)

// ErrInvalid is wrapped by every error Validate returns.
var ErrInvalid = errors.New("config: invalid")

// Validate checks that cfg describes a playable game.
func Validate(cfg SpikesConfig) error {
	if cfg.Grid.Rows <= 0 || cfg.Grid.Columns <= 0 {
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalid, cfg.Grid.Rows, cfg.Grid.Columns)
	}
	if cfg.Player.StartColumn < 0 || cfg.Player.StartColumn >= cfg.Grid.Columns {
		return fmt.Errorf("%w: player.start_column %d outside [0,%d)", ErrInvalid, cfg.Player.StartColumn, cfg.Grid.Columns)
	}
	if cfg.Timing.TickInterval <= 0 {
		return fmt.Errorf("%w: timing.tick_interval must be positive, got %s", ErrInvalid, cfg.Timing.TickInterval)
	}
	if cfg.Scoring.PerTick < 0 || cfg.Scoring.PerDodge < 0 {
		return fmt.Errorf("%w: scoring values must not be negative", ErrInvalid)
	}
	if err := validateSpawn(cfg.Spawn, cfg.Grid.Columns); err != nil {
		return err
	}
	for action, keys := range cfg.Keys {
		if _, err := core.ParseAction(action); err != nil {
			return fmt.Errorf("%w: keys: %w", ErrInvalid, err)
		}
		for _, k := range keys {
			if k == "" {
				return fmt.Errorf("%w: keys.%s contains an empty key", ErrInvalid, action)
			}
		}
	}
	switch cfg.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		return fmt.Errorf("%w: difficulty.progression.type %q", ErrInvalid, cfg.Difficulty.Progression.Type)
	}
	if cfg.Difficulty.InitialLevel < 0 || cfg.Difficulty.InitialLevel > 1 {
		return fmt.Errorf("%w: difficulty.initial_level %v outside [0,1]", ErrInvalid, cfg.Difficulty.InitialLevel)
	}
	return nil
}

func validateSpawn(s SpawnConfig, columns int) error {
	switch s.Mode {
	case SpawnRandom:
		if s.Chance < 0 || s.Chance > 1 {
			return fmt.Errorf("%w: spawn.chance %v outside [0,1]", ErrInvalid, s.Chance)
		}
	case SpawnPattern:
		if len(s.Pattern) == 0 {
			return fmt.Errorf("%w: spawn.pattern is empty", ErrInvalid)
		}
		for i, row := range s.Pattern {
			for _, col := range row {
				if col < 0 || col >= columns {
					return fmt.Errorf("%w: spawn.pattern[%d] column %d outside [0,%d)", ErrInvalid, i, col, columns)
				}
			}
		}
	default:
		return fmt.Errorf("%w: spawn.mode %q (use random or pattern)", ErrInvalid, s.Mode)
	}
	if s.MinGap < 0 || s.StartDelay < 0 {
		return fmt.Errorf("%w: spawn.min_gap and spawn.start_delay must not be negative", ErrInvalid)
	}
	return nil
}
