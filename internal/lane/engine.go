package lane

import (
	"fmt"
	"time"
)

// DefaultTickInterval is the wall-clock time between two ticks.
const DefaultTickInterval = time.Second / 24

// Config contains everything needed to start a session.
type Config struct {
	Rows          int           // Grid rows, including the player's row
	Columns       int           // Grid columns (lane width)
	StartColumn   int           // Player column at session start
	TickInterval  time.Duration // Time between ticks when driven by Run
	ScorePerTick  int           // Score added for every survived tick
	ScorePerDodge int           // Score added for every obstacle that passes the player
	Spawner       SpawnPolicy   // Spawn policy; nil never spawns
}

// DefaultConfig returns a 3x3 session with the player in column 0.
func DefaultConfig() Config {
	return Config{
		Rows:          3,
		Columns:       3,
		StartColumn:   0,
		TickInterval:  DefaultTickInterval,
		ScorePerTick:  1,
		ScorePerDodge: 0,
	}
}

// State is the lifecycle state of an engine.
type State int

const (
	StateInitializing State = iota
	StateRunning
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "Initializing"
	case StateRunning:
		return "Running"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Engine owns one game session and advances it one tick at a time.
// An Engine is not safe for concurrent use; a single goroutine drives it.
type Engine struct {
	cfg      Config
	state    State
	grid     *Grid
	scroller *Scroller
	player   Player
	tick     int
	dodged   int
}

// New validates cfg and returns a running engine.
func New(cfg Config) (*Engine, error) {
	e := &Engine{cfg: cfg, state: StateInitializing}

	grid, err := NewGrid(cfg.Rows, cfg.Columns)
	if err != nil {
		return nil, err
	}
	if cfg.StartColumn < 0 || cfg.StartColumn >= cfg.Columns {
		return nil, fmt.Errorf("%w: column %d not in [0, %d)", ErrInvalidPlayerPosition, cfg.StartColumn, cfg.Columns)
	}
	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("%w: tick interval %s", ErrInvalidConfig, cfg.TickInterval)
	}
	if cfg.ScorePerTick < 0 || cfg.ScorePerDodge < 0 {
		return nil, fmt.Errorf("%w: negative score increment (tick %d, dodge %d)", ErrInvalidConfig, cfg.ScorePerTick, cfg.ScorePerDodge)
	}

	e.grid = grid
	e.scroller = NewScroller(grid, cfg.Spawner)
	e.player = newPlayer(cfg.StartColumn)
	e.state = StateRunning
	return e, nil
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// GameOver reports whether the session has ended.
func (e *Engine) GameOver() bool {
	return e.state == StateGameOver
}

// TickInterval returns the configured tick interval.
func (e *Engine) TickInterval() time.Duration {
	return e.cfg.TickInterval
}

// Grid exposes the session grid. Callers outside the tick step must treat it
// as read-only; it is meant for seeding scenarios before the first tick.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Tick advances the session by one step:
// resolve movement, scroll the lane, check the arriving row against the new
// player column, then update counters. Any error leaves the session unchanged.
func (e *Engine) Tick(action MoveAction) (Snapshot, error) {
	if e.state == StateGameOver {
		return e.Snapshot(), fmt.Errorf("%w: game over at tick %d", ErrSessionEnded, e.tick)
	}

	column, err := Resolve(action, e.player.Column, e.grid.Columns())
	if err != nil {
		return e.Snapshot(), err
	}

	spawn, err := e.scroller.Plan(SpawnContext{
		Tick:  e.tick + 1,
		Score: e.player.Score,
	})
	if err != nil {
		return e.Snapshot(), err
	}

	advance, err := e.scroller.Apply(spawn)
	if err != nil {
		return e.Snapshot(), err
	}

	e.player.Column = column
	e.tick++

	if Collides(advance.Boundary, column) {
		e.player.Alive = false
		e.state = StateGameOver
		return e.Snapshot(), nil
	}

	passed := advance.Discarded.Count()
	e.dodged += passed
	e.player.Score += e.cfg.ScorePerTick + passed*e.cfg.ScorePerDodge

	return e.Snapshot(), nil
}

// Snapshot returns a read-only copy of the session.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Grid:     e.grid.Matrix(),
		Player:   e.player,
		Tick:     e.tick,
		Score:    e.player.Score,
		Dodged:   e.dodged,
		GameOver: e.state == StateGameOver,
	}
}
