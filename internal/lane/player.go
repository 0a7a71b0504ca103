package lane

// Player is the state of the single player-controlled occupant.
type Player struct {
	Row    int  // Always PlayerRow
	Column int  // Current lane column in [0, columns)
	Alive  bool // False once the player collided
	Score  int  // Accumulated score, never negative
}

func newPlayer(column int) Player {
	return Player{
		Row:    PlayerRow,
		Column: column,
		Alive:  true,
	}
}

// OccupantKind tags what sits in a grid cell.
type OccupantKind int

const (
	OccupantPlayer OccupantKind = iota
	OccupantObstacle
)

// String returns a human-readable name for the kind.
func (k OccupantKind) String() string {
	switch k {
	case OccupantPlayer:
		return "Player"
	case OccupantObstacle:
		return "Obstacle"
	default:
		return "Unknown"
	}
}

// Occupant is one thing placed on the grid, for renderers that prefer a flat
// list over the occupancy matrix.
type Occupant struct {
	Kind  OccupantKind
	Row   int
	Col   int
	Count int // Obstacles stacked in the cell; 1 for the player
}
