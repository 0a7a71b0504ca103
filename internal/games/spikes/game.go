// Package spikes implements the spike lane games: the player sidesteps
// between lanes while spikes scroll toward them one row per tick.
package spikes

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spikelane/internal/config"
	"github.com/vovakirdan/spikelane/internal/core"
	"github.com/vovakirdan/spikelane/internal/lane"
	"github.com/vovakirdan/spikelane/internal/registry"
)

// Variant is one registered flavor of the game.
type Variant struct {
	ID          string
	Title       string
	Description string
}

// Variants lists every registered flavor, in menu order.
var Variants = []Variant{
	{
		ID:          "spikes",
		Title:       "Spike Dodge",
		Description: "Three lanes, six rows. Spikes start after a short delay.",
	},
	{
		ID:          "lanes",
		Title:       "Lane Runner",
		Description: "Five lanes, five rows. Busier and ramps with time.",
	},
}

// ErrNotReset is returned by Step before the first successful Reset.
var ErrNotReset = errors.New("spikes: game not reset")

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// SetLogger sets the logger used by every game instance.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a lane.Engine to the registry.Game interface.
type Game struct {
	variant    Variant
	override   *config.SpikesConfig // Used instead of loading when set
	cfg        config.SpikesConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	engine     *lane.Engine
	snap       lane.Snapshot
	paused     bool
}

// New creates a game that loads its config on Reset.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(v Variant, cfg config.SpikesConfig) *Game {
	return &Game{variant: v, override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Describe returns a one-line description for menus.
func (g *Game) Describe() string {
	return g.variant.Description
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	if runtime.TickInterval > 0 {
		cfg.Timing.TickInterval = runtime.TickInterval
	}

	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	engine, err := lane.New(EngineConfig(cfg, runtime.Seed, difficulty))
	if err != nil {
		return fmt.Errorf("spikes: %s: %w", g.variant.ID, err)
	}

	g.runtime = runtime
	g.cfg = cfg
	g.difficulty = difficulty
	g.engine = engine
	g.snap = engine.Snapshot()
	g.paused = false

	logger.Debug("game reset",
		"game", g.variant.ID,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Rows, cfg.Grid.Columns),
		"spawn", cfg.Spawn.Mode,
		"interval", cfg.Timing.TickInterval,
		"seed", runtime.Seed)
	return nil
}

func (g *Game) loadConfig() (config.SpikesConfig, error) {
	var cfg config.SpikesConfig
	if g.override != nil {
		cfg = *g.override
		cfg.Keys = cfg.Keys.Merge(nil)
	} else {
		loaded, err := config.Load(g.variant.ID, configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) (core.StepResult, error) {
	if g.engine == nil {
		return core.StepResult{}, ErrNotReset
	}

	if g.engine.GameOver() {
		if in.Has(core.ActionRestart) {
			if err := g.Reset(g.runtime); err != nil {
				return core.StepResult{State: g.State()}, err
			}
		}
		return core.StepResult{State: g.State()}, nil
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}, nil
	}

	snap, err := g.engine.Tick(MoveFromInput(in))
	if err != nil {
		return core.StepResult{State: g.State()}, fmt.Errorf("spikes: %s: %w", g.variant.ID, err)
	}
	g.snap = snap

	if snap.GameOver {
		logger.Debug("game over", "game", g.variant.ID, "tick", snap.Tick, "score", snap.Score, "dodged", snap.Dodged)
	}

	return core.StepResult{State: g.State()}, nil
}

// MoveFromInput converts the frame's lane move into a lane action.
func MoveFromInput(in core.InputFrame) lane.MoveAction {
	switch in.Move {
	case core.ActionLeft:
		return lane.MoveLeft
	case core.ActionRight:
		return lane.MoveRight
	default:
		return lane.MoveNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		Tick:     g.snap.Tick,
		GameOver: g.snap.GameOver,
		Paused:   g.paused,
	}
}

// TickInterval returns the configured period between ticks.
func (g *Game) TickInterval() time.Duration {
	if g.engine != nil {
		return g.engine.TickInterval()
	}
	return lane.DefaultTickInterval
}

// Config returns the configuration of the current session.
func (g *Game) Config() config.SpikesConfig {
	return g.cfg
}

// Engine returns the engine of the current session, nil before Reset.
func (g *Game) Engine() *lane.Engine {
	return g.engine
}

// Snapshot returns the state after the last tick.
func (g *Game) Snapshot() lane.Snapshot {
	return g.snap
}

// Register every variant with the registry
func init() {
	for _, v := range Variants {
		v := v
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
