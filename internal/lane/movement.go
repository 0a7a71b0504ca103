package lane

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/spikelane/internal/core"
)

// MoveAction is the abstract movement input for one tick.
type MoveAction int

const (
	MoveNone MoveAction = iota
	MoveLeft
	MoveRight
)

// String returns a human-readable name for the action.
func (a MoveAction) String() string {
	switch a {
	case MoveNone:
		return "None"
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	default:
		return fmt.Sprintf("MoveAction(%d)", int(a))
	}
}

// Valid reports whether a is one of the defined actions.
func (a MoveAction) Valid() bool {
	return a == MoveNone || a == MoveLeft || a == MoveRight
}

// ParseMoveAction parses "left"/"l", "right"/"r" and "none"/"n"/"." (case-insensitive).
func ParseMoveAction(s string) (MoveAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "n", ".":
		return MoveNone, nil
	case "left", "l":
		return MoveLeft, nil
	case "right", "r":
		return MoveRight, nil
	}
	return MoveNone, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Resolve returns the column the player occupies after applying action from
// current. Movement is clamped at the grid edges, never wrapped.
func Resolve(action MoveAction, current, columns int) (int, error) {
	if columns <= 0 {
		return current, fmt.Errorf("%w: %d columns", ErrInvalidDimensions, columns)
	}
	if current < 0 || current >= columns {
		return current, fmt.Errorf("%w: column %d not in [0, %d)", ErrOutOfBounds, current, columns)
	}

	switch action {
	case MoveNone:
		return current, nil
	case MoveLeft:
		return core.Clamp(current-1, 0, columns-1), nil
	case MoveRight:
		return core.Clamp(current+1, 0, columns-1), nil
	}
	return current, fmt.Errorf("%w: %d", ErrUnknownAction, int(action))
}
