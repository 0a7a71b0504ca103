package lane

// Snapshot is a copy of the session handed to renderers after every tick.
// Mutating it has no effect on the engine.
type Snapshot struct {
	Grid     [][]int // Occupancy counts, Grid[row][col]; row 0 is the player's row
	Player   Player
	Tick     int
	Score    int
	Dodged   int // Obstacles that scrolled past the player
	GameOver bool
}

// Rows returns the grid height.
func (s Snapshot) Rows() int {
	return len(s.Grid)
}

// Columns returns the grid width.
func (s Snapshot) Columns() int {
	if len(s.Grid) == 0 {
		return 0
	}
	return len(s.Grid[0])
}

// Row returns the given row, or nil when out of range.
func (s Snapshot) Row(row int) Row {
	if row < 0 || row >= len(s.Grid) {
		return nil
	}
	return Row(s.Grid[row])
}

// Occupants lists the player followed by every occupied obstacle cell,
// ordered by row then column.
func (s Snapshot) Occupants() []Occupant {
	out := []Occupant{{
		Kind:  OccupantPlayer,
		Row:   s.Player.Row,
		Col:   s.Player.Column,
		Count: 1,
	}}
	for r, row := range s.Grid {
		for c, n := range row {
			if n > 0 {
				out = append(out, Occupant{Kind: OccupantObstacle, Row: r, Col: c, Count: n})
			}
		}
	}
	return out
}
