package lane

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// InputSource supplies at most one move action per poll. Poll must not block;
// it returns false when nothing is pending. Sources that also implement
// io.Closer are closed when Run returns.
type InputSource interface {
	Poll() (MoveAction, bool)
}

// Renderer receives a snapshot after every tick.
type Renderer interface {
	Render(snap Snapshot) error
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(snap Snapshot) error

// Render calls f.
func (f RenderFunc) Render(snap Snapshot) error {
	return f(snap)
}

// RunOptions tune the fixed-interval driver.
type RunOptions struct {
	Logger   *log.Logger // Debug logging of the loop; nil discards
	MaxTicks int         // Stop after this many ticks; 0 runs until game over or cancellation
}

// Run drives the engine at its tick interval until the session ends, ctx is
// cancelled, MaxTicks is reached or a tick fails. The initial snapshot is
// rendered before the first tick. Run returns nil on game over and on reaching
// MaxTicks, ctx.Err() on cancellation, and the tick or render error otherwise.
// The ticker is stopped and in is closed on every path.
func (e *Engine) Run(ctx context.Context, in InputSource, out Renderer, opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if closer, ok := in.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.Debug("closing input source", "error", err)
			}
		}()
	}

	if e.state == StateGameOver {
		return fmt.Errorf("%w: game over at tick %d", ErrSessionEnded, e.tick)
	}

	ticker := time.NewTicker(e.cfg.TickInterval)
	defer ticker.Stop()

	logger.Debug("loop started",
		"rows", e.grid.Rows(),
		"columns", e.grid.Columns(),
		"interval", e.cfg.TickInterval,
	)

	if err := out.Render(e.Snapshot()); err != nil {
		return fmt.Errorf("lane: render: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			logger.Debug("loop cancelled", "tick", e.tick, "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
		}

		action, ok := in.Poll()
		if !ok {
			action = MoveNone
		}

		snap, err := e.Tick(action)
		if err != nil {
			logger.Debug("tick failed", "tick", e.tick+1, "error", err)
			return err
		}

		if err := out.Render(snap); err != nil {
			return fmt.Errorf("lane: render: %w", err)
		}

		if snap.GameOver {
			logger.Debug("game over", "tick", snap.Tick, "score", snap.Score, "dodged", snap.Dodged)
			return nil
		}

		if opts.MaxTicks > 0 && snap.Tick >= opts.MaxTicks {
			logger.Debug("tick limit reached", "tick", snap.Tick, "score", snap.Score)
			return nil
		}
	}
}
