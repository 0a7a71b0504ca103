package lane

import (
	"context"
	"errors"
	"testing"
	"time"
)

// queueInput hands out queued actions, then reports nothing pending.
type queueInput struct {
	actions []MoveAction
	closed  bool
}

func (q *queueInput) Poll() (MoveAction, bool) {
	if len(q.actions) == 0 {
		return MoveNone, false
	}
	a := q.actions[0]
	q.actions = q.actions[1:]
	return a, true
}

func (q *queueInput) Close() error {
	q.closed = true
	return nil
}

func fastEngine(t *testing.T, rows, cols, start int, spawner SpawnPolicy) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Columns = cols
	cfg.StartColumn = start
	cfg.TickInterval = time.Millisecond
	cfg.Spawner = spawner
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e
}

func TestRunStopsOnGameOver(t *testing.T) {
	e := fastEngine(t, 3, 3, 1, spawnOnce(1))
	in := &queueInput{}

	var snaps []Snapshot
	err := e.Run(context.Background(), in, RenderFunc(func(s Snapshot) error {
		snaps = append(snaps, s)
		return nil
	}), RunOptions{})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// Initial frame plus three ticks
	if len(snaps) != 4 {
		t.Fatalf("rendered %d snapshots, expected 4", len(snaps))
	}
	if snaps[0].Tick != 0 {
		t.Errorf("first snapshot should be the initial state, got tick %d", snaps[0].Tick)
	}
	last := snaps[len(snaps)-1]
	if !last.GameOver || last.Tick != 3 {
		t.Errorf("final snapshot = tick %d game over %v, expected tick 3 game over", last.Tick, last.GameOver)
	}
	if !in.closed {
		t.Error("input source should be closed when Run returns")
	}
}

func TestRunAppliesPolledInput(t *testing.T) {
	e := fastEngine(t, 3, 3, 1, spawnOnce(1))
	in := &queueInput{actions: []MoveAction{MoveLeft}}

	err := e.Run(context.Background(), in, RenderFunc(func(Snapshot) error { return nil }), RunOptions{MaxTicks: 4})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	snap := e.Snapshot()
	if snap.GameOver {
		t.Error("moving out of the obstacle column should avoid the collision")
	}
	if snap.Player.Column != 0 {
		t.Errorf("player column = %d, expected 0", snap.Player.Column)
	}
	if snap.Tick != 4 {
		t.Errorf("Run should stop at the tick limit, stopped at %d", snap.Tick)
	}
}

func TestRunCancelled(t *testing.T) {
	e := fastEngine(t, 3, 3, 0, nil)
	in := &queueInput{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := e.Run(ctx, in, RenderFunc(func(s Snapshot) error {
		if s.Tick == 2 {
			cancel()
		}
		return nil
	}), RunOptions{})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, expected context.Canceled", err)
	}
	if e.GameOver() {
		t.Error("cancellation should not end the session")
	}
	if !in.closed {
		t.Error("input source should be closed on cancellation")
	}
}

func TestRunPropagatesTickError(t *testing.T) {
	e := fastEngine(t, 3, 3, 0, SpawnFunc(func(SpawnContext) ([]int, error) {
		return []int{10}, nil
	}))
	in := &queueInput{}

	err := e.Run(context.Background(), in, RenderFunc(func(Snapshot) error { return nil }), RunOptions{})
	if !errors.Is(err, ErrInvalidColumn) {
		t.Fatalf("Run() error = %v, expected ErrInvalidColumn", err)
	}
	if e.Snapshot().Tick != 0 {
		t.Error("failed tick should not advance the counter")
	}
	if !in.closed {
		t.Error("input source should be closed on error")
	}
}

func TestRunPropagatesRenderError(t *testing.T) {
	e := fastEngine(t, 3, 3, 0, nil)
	boom := errors.New("boom")

	err := e.Run(context.Background(), &queueInput{}, RenderFunc(func(Snapshot) error { return boom }), RunOptions{})
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, expected render error", err)
	}
}

func TestRunAfterGameOver(t *testing.T) {
	e := fastEngine(t, 1, 1, 0, NewPatternSpawner([][]int{{0}}))
	if snap, err := e.Tick(MoveNone); err != nil || !snap.GameOver {
		t.Fatalf("expected immediate game over on a 1x1 grid, got %+v, %v", snap, err)
	}

	in := &queueInput{}
	err := e.Run(context.Background(), in, RenderFunc(func(Snapshot) error { return nil }), RunOptions{})
	if !errors.Is(err, ErrSessionEnded) {
		t.Fatalf("Run() error = %v, expected ErrSessionEnded", err)
	}
	if !in.closed {
		t.Error("input source should be closed even when Run refuses to start")
	}
}
