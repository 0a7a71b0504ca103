package lane_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/spikelane/internal/lane"
)

func mustGrid(t *testing.T, rows, cols int) *lane.Grid {
	t.Helper()
	g, err := lane.NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) failed: %v", rows, cols, err)
	}
	return g
}

func TestNewGridStartsEmpty(t *testing.T) {
	sizes := []struct{ rows, cols int }{
		{1, 1}, {3, 3}, {6, 3}, {5, 5}, {2, 9},
	}

	for _, sz := range sizes {
		g := mustGrid(t, sz.rows, sz.cols)
		if g.Rows() != sz.rows || g.Columns() != sz.cols {
			t.Errorf("expected %dx%d grid, got %dx%d", sz.rows, sz.cols, g.Rows(), g.Columns())
		}
		for r := 0; r < sz.rows; r++ {
			for c := 0; c < sz.cols; c++ {
				v, err := g.Get(r, c)
				if err != nil {
					t.Fatalf("Get(%d, %d) failed: %v", r, c, err)
				}
				if v != 0 {
					t.Errorf("%dx%d: cell (%d, %d) = %d, expected 0", sz.rows, sz.cols, r, c, v)
				}
			}
		}
	}
}

func TestNewGridInvalidDimensions(t *testing.T) {
	tests := []struct{ rows, cols int }{
		{0, 3}, {3, 0}, {-1, 3}, {3, -2}, {0, 0},
	}

	for _, tc := range tests {
		g, err := lane.NewGrid(tc.rows, tc.cols)
		if !errors.Is(err, lane.ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d) error = %v, expected ErrInvalidDimensions", tc.rows, tc.cols, err)
		}
		if g != nil {
			t.Errorf("NewGrid(%d, %d) should return nil grid on error", tc.rows, tc.cols)
		}
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := mustGrid(t, 3, 4)

	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row past end", 3, 0},
		{"col past end", 0, 4},
		{"both past end", 3, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := g.Get(tc.row, tc.col); !errors.Is(err, lane.ErrOutOfBounds) {
				t.Errorf("Get(%d, %d) error = %v, expected ErrOutOfBounds", tc.row, tc.col, err)
			}
			if err := g.Set(tc.row, tc.col, 1); !errors.Is(err, lane.ErrOutOfBounds) {
				t.Errorf("Set(%d, %d) error = %v, expected ErrOutOfBounds", tc.row, tc.col, err)
			}
		})
	}

	if g.Occupied() != 0 {
		t.Error("failed Set calls should not write anything")
	}
}

func TestGridSetGet(t *testing.T) {
	g := mustGrid(t, 3, 3)

	if err := g.Set(1, 2, 2); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, err := g.Get(1, 2)
	if err != nil || v != 2 {
		t.Errorf("Get(1, 2) = %d, %v; expected 2, nil", v, err)
	}

	if err := g.Set(0, 0, -1); !errors.Is(err, lane.ErrInvalidOccupancy) {
		t.Errorf("negative occupancy error = %v, expected ErrInvalidOccupancy", err)
	}
}

func TestGridShiftWithoutSpawnStaysEmpty(t *testing.T) {
	g := mustGrid(t, 5, 4)

	for i := 0; i < 20; i++ {
		discarded := g.Shift()
		if discarded.Count() != 0 {
			t.Fatalf("shift %d discarded %d obstacles from an empty grid", i, discarded.Count())
		}
		if err := g.SpawnRow(nil); err != nil {
			t.Fatalf("SpawnRow(nil) failed: %v", err)
		}
	}

	if g.Occupied() != 0 {
		t.Errorf("expected empty grid after shifting, got %d obstacles", g.Occupied())
	}
}

func TestSpawnRowRoundTrip(t *testing.T) {
	g := mustGrid(t, 4, 5)

	if err := g.SpawnRow([]int{1, 3}); err != nil {
		t.Fatalf("SpawnRow failed: %v", err)
	}

	row, err := g.Row(g.SpawnEdge())
	if err != nil {
		t.Fatalf("Row failed: %v", err)
	}
	if got := row.Columns(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("spawn row columns = %v, expected [1 3]", got)
	}
}

func TestSpawnRowReplacesEdge(t *testing.T) {
	g := mustGrid(t, 3, 3)

	if err := g.SpawnRow([]int{0, 2}); err != nil {
		t.Fatalf("SpawnRow failed: %v", err)
	}
	if err := g.SpawnRow([]int{1}); err != nil {
		t.Fatalf("SpawnRow failed: %v", err)
	}
	row, _ := g.Row(g.SpawnEdge())
	if got := row.Columns(); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("spawn row columns = %v, expected [1]", got)
	}

	// Empty spawn clears the edge
	if err := g.SpawnRow(nil); err != nil {
		t.Fatalf("SpawnRow(nil) failed: %v", err)
	}
	row, _ = g.Row(g.SpawnEdge())
	if row.Count() != 0 {
		t.Errorf("empty spawn should clear the edge, got %v", row)
	}
}

func TestSpawnRowStacksDuplicates(t *testing.T) {
	g := mustGrid(t, 2, 3)

	if err := g.SpawnRow([]int{2, 2}); err != nil {
		t.Fatalf("SpawnRow failed: %v", err)
	}
	v, _ := g.Get(g.SpawnEdge(), 2)
	if v != 2 {
		t.Errorf("duplicate column should hold 2 obstacles, got %d", v)
	}
}

func TestSpawnRowInvalidColumn(t *testing.T) {
	g := mustGrid(t, 3, 3)
	if err := g.SpawnRow([]int{1}); err != nil {
		t.Fatalf("SpawnRow failed: %v", err)
	}
	before := g.Matrix()

	for _, cols := range [][]int{{3}, {-1}, {0, 5}} {
		if err := g.SpawnRow(cols); !errors.Is(err, lane.ErrInvalidColumn) {
			t.Errorf("SpawnRow(%v) error = %v, expected ErrInvalidColumn", cols, err)
		}
	}

	if !reflect.DeepEqual(g.Matrix(), before) {
		t.Errorf("failed spawn modified the grid: %v -> %v", before, g.Matrix())
	}
}

func TestGridShiftMovesTowardPlayer(t *testing.T) {
	g := mustGrid(t, 3, 3)
	if err := g.SpawnRow([]int{2}); err != nil {
		t.Fatalf("SpawnRow failed: %v", err)
	}

	discarded := g.Shift()
	if discarded.Count() != 0 {
		t.Errorf("first shift should discard an empty row, got %v", discarded)
	}
	if row, _ := g.Row(1); !row.Has(2) {
		t.Errorf("row 1 should hold the shifted obstacle, got %v", row)
	}

	// Spawn edge keeps its content until the next spawn overwrites it
	if row, _ := g.Row(2); !row.Has(2) {
		t.Errorf("spawn edge should be untouched by Shift, got %v", row)
	}

	if err := g.SpawnRow(nil); err != nil {
		t.Fatalf("SpawnRow failed: %v", err)
	}
	g.Shift()
	discarded = g.Shift()
	if !discarded.Has(2) {
		t.Errorf("obstacle should fall off past the player row, discarded %v", discarded)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, 2, 2)
	clone := g.Clone()

	if err := clone.Set(0, 0, 1); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v, _ := g.Get(0, 0); v != 0 {
		t.Error("writing to a clone should not change the original")
	}
}

func TestRowHelpers(t *testing.T) {
	r := lane.Row{0, 2, 0, 1}

	if !r.Has(1) || !r.Has(3) || r.Has(0) {
		t.Errorf("Has reports wrong occupancy for %v", r)
	}
	if r.Has(-1) || r.Has(4) {
		t.Error("columns outside the row should never be occupied")
	}
	if r.Count() != 3 {
		t.Errorf("Count() = %d, expected 3", r.Count())
	}
	if got := r.Columns(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("Columns() = %v, expected [1 3]", got)
	}
}
