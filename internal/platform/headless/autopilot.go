package headless

import (
	"github.com/vovakirdan/spikelane/internal/lane"
)

// Autopilot is both a renderer and an input source. It watches every
// snapshot and steers the player out of the lane of the next arriving row.
type Autopilot struct {
	pending lane.MoveAction
	has     bool
}

// NewAutopilot creates an autopilot with no pending move.
func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Render implements lane.Renderer by planning the next move.
func (a *Autopilot) Render(snap lane.Snapshot) error {
	a.pending, a.has = Plan(snap), true
	return nil
}

// Poll implements lane.InputSource.
func (a *Autopilot) Poll() (lane.MoveAction, bool) {
	if !a.has {
		return lane.MoveNone, false
	}
	a.has = false
	return a.pending, true
}

// Plan picks the move that keeps the player clear of the row that reaches
// the player's row on the next tick. Among safe moves it prefers staying, then
// the side whose lane is also clear one row further out.
func Plan(snap lane.Snapshot) lane.MoveAction {
	if snap.GameOver || snap.Rows() == 0 {
		return lane.MoveNone
	}

	if snap.Rows() == 1 {
		// The spawned row lands on the player's row; nothing to read ahead
		return lane.MoveNone
	}
	next := snap.Row(lane.PlayerRow + 1)
	after := snap.Row(lane.PlayerRow + 2)

	col := snap.Player.Column
	best, bestScore := lane.MoveNone, -1
	for _, move := range []lane.MoveAction{lane.MoveNone, lane.MoveLeft, lane.MoveRight} {
		target, err := lane.Resolve(move, col, snap.Columns())
		if err != nil || next.Has(target) {
			continue
		}
		score := 1
		if !after.Has(target) {
			score = 2
		}
		if move == lane.MoveNone {
			score++ // Prefer not moving when it is safe
		}
		if score > bestScore {
			best, bestScore = move, score
		}
	}
	return best
}
