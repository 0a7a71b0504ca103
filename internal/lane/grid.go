// Package lane implements the tick-driven simulation of a single-lane obstacle
// game: an occupancy grid that scrolls toward the player one row per tick, a
// player that moves sideways between columns, and collision detection against
// the row arriving at the player's row.
//
// The package has no terminal or UI dependencies. Front ends drive it either by
// calling Engine.Tick directly or through Engine.Run with an InputSource and a
// Renderer.
package lane

import "fmt"

// PlayerRow is the grid row the player occupies. It is the edge nearest the
// viewer; obstacles spawn at the opposite edge and scroll toward it.
const PlayerRow = 0

// Grid is a fixed-size occupancy matrix. Each cell holds the number of
// obstacles occupying it (0 = empty). Cells are stored in row-major order.
type Grid struct {
	rows  int
	cols  int
	cells []int
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns.
func (g *Grid) Columns() int {
	return g.cols
}

// SpawnEdge returns the index of the row farthest from the player.
func (g *Grid) SpawnEdge() int {
	return g.rows - 1
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

func (g *Grid) checkBounds(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return nil
}

// Get returns the occupancy count of a cell.
func (g *Grid) Get(row, col int) (int, error) {
	if err := g.checkBounds(row, col); err != nil {
		return 0, err
	}
	return g.cells[g.index(row, col)], nil
}

// Set writes the occupancy count of a cell.
func (g *Grid) Set(row, col, value int) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	if value < 0 {
		return fmt.Errorf("%w: %d at (%d, %d)", ErrInvalidOccupancy, value, row, col)
	}
	g.cells[g.index(row, col)] = value
	return nil
}

// Row returns a copy of one row's occupancy counts.
func (g *Grid) Row(row int) (Row, error) {
	if row < 0 || row >= g.rows {
		return nil, fmt.Errorf("%w: row %d in %dx%d grid", ErrOutOfBounds, row, g.rows, g.cols)
	}
	return g.row(row), nil
}

func (g *Grid) row(row int) Row {
	start := g.index(row, 0)
	out := make(Row, g.cols)
	copy(out, g.cells[start:start+g.cols])
	return out
}

// Shift moves every row one step toward the player: row i takes the content of
// row i+1 for all rows except the spawn edge, which keeps its content until the
// next SpawnRow overwrites it. The previous content of the player's row falls
// off the grid and is returned.
func (g *Grid) Shift() Row {
	discarded := g.row(PlayerRow)
	copy(g.cells, g.cells[g.cols:])
	return discarded
}

// ValidateColumns checks that every column is inside the grid.
func (g *Grid) ValidateColumns(cols []int) error {
	for _, c := range cols {
		if c < 0 || c >= g.cols {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidColumn, c, g.cols)
		}
	}
	return nil
}

// SpawnRow clears the spawn edge and places one obstacle in each listed
// column. A column listed twice holds two obstacles. An empty list only
// clears the row. Nothing is written if any column is out of range.
func (g *Grid) SpawnRow(cols []int) error {
	if err := g.ValidateColumns(cols); err != nil {
		return err
	}
	edge := g.SpawnEdge()
	start := g.index(edge, 0)
	clear(g.cells[start : start+g.cols])
	for _, c := range cols {
		g.cells[start+c]++
	}
	return nil
}

// Clear empties every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Occupied returns the total obstacle count over the whole grid.
func (g *Grid) Occupied() int {
	n := 0
	for _, v := range g.cells {
		n += v
	}
	return n
}

// Matrix returns a copy of the grid as rows of occupancy counts.
func (g *Grid) Matrix() [][]int {
	m := make([][]int, g.rows)
	for r := range m {
		m[r] = g.row(r)
	}
	return m
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Row is a copy of one grid row, indexed by column.
type Row []int

// Has reports whether the column holds at least one obstacle.
// Columns outside the row are never occupied.
func (r Row) Has(col int) bool {
	return col >= 0 && col < len(r) && r[col] > 0
}

// Columns returns the occupied columns in ascending order.
func (r Row) Columns() []int {
	cols := make([]int, 0, len(r))
	for c, v := range r {
		if v > 0 {
			cols = append(cols, c)
		}
	}
	return cols
}

// Count returns the number of obstacles in the row.
func (r Row) Count() int {
	n := 0
	for _, v := range r {
		n += v
	}
	return n
}
