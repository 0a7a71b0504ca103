package lane

import "errors"

// Error kinds reported by the simulation. Callers match them with errors.Is;
// the returned errors wrap these with the offending values.
var (
	// ErrInvalidDimensions is returned when a grid is built with a non-positive size.
	ErrInvalidDimensions = errors.New("lane: invalid grid dimensions")

	// ErrOutOfBounds is returned by grid accessors for indices outside the grid.
	ErrOutOfBounds = errors.New("lane: cell out of bounds")

	// ErrInvalidColumn is returned when a spawn row names a column outside [0, columns).
	ErrInvalidColumn = errors.New("lane: invalid obstacle column")

	// ErrInvalidPlayerPosition is returned when the starting column is outside the grid.
	ErrInvalidPlayerPosition = errors.New("lane: invalid player position")

	// ErrUnknownAction is returned for a move action outside {None, Left, Right}.
	ErrUnknownAction = errors.New("lane: unknown move action")

	// ErrSessionEnded is returned by Tick once the session reached game over.
	ErrSessionEnded = errors.New("lane: session ended")

	// ErrInvalidConfig is returned for engine settings that are neither grid
	// dimensions nor a player position (tick interval, scoring).
	ErrInvalidConfig = errors.New("lane: invalid engine config")

	// ErrInvalidOccupancy is returned when a cell is set to a negative count.
	ErrInvalidOccupancy = errors.New("lane: invalid occupancy")
)
