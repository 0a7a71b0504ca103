package lane

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		action   MoveAction
		current  int
		columns  int
		expected int
	}{
		{"none keeps column", MoveNone, 2, 5, 2},
		{"left", MoveLeft, 2, 5, 1},
		{"right", MoveRight, 2, 5, 3},
		{"left at edge", MoveLeft, 0, 5, 0},
		{"right at edge", MoveRight, 4, 5, 4},
		{"single column left", MoveLeft, 0, 1, 0},
		{"single column right", MoveRight, 0, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(tc.action, tc.current, tc.columns)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if got != tc.expected {
				t.Errorf("Resolve(%s, %d, %d) = %d, expected %d", tc.action, tc.current, tc.columns, got, tc.expected)
			}
		})
	}
}

func TestResolveRightClampsAtEdge(t *testing.T) {
	const columns = 6
	col := 0
	var err error

	for i := 0; i < columns-1; i++ {
		col, err = Resolve(MoveRight, col, columns)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
	}
	if col != columns-1 {
		t.Fatalf("after %d Right moves column = %d, expected %d", columns-1, col, columns-1)
	}

	for i := 0; i < 3; i++ {
		col, _ = Resolve(MoveRight, col, columns)
	}
	if col != columns-1 {
		t.Errorf("Right at the edge should not wrap, got column %d", col)
	}
}

func TestResolveUnknownAction(t *testing.T) {
	for _, a := range []MoveAction{MoveAction(-1), MoveAction(3), MoveAction(42)} {
		got, err := Resolve(a, 1, 3)
		if !errors.Is(err, ErrUnknownAction) {
			t.Errorf("Resolve(%d) error = %v, expected ErrUnknownAction", int(a), err)
		}
		if got != 1 {
			t.Errorf("unknown action should report the unchanged column, got %d", got)
		}
		if a.Valid() {
			t.Errorf("MoveAction(%d) should not be valid", int(a))
		}
	}
}

func TestResolveInvalidArguments(t *testing.T) {
	if _, err := Resolve(MoveNone, 0, 0); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero columns error = %v, expected ErrInvalidDimensions", err)
	}
	if _, err := Resolve(MoveNone, 3, 3); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("column outside grid error = %v, expected ErrOutOfBounds", err)
	}
}

func TestParseMoveAction(t *testing.T) {
	tests := []struct {
		in       string
		expected MoveAction
	}{
		{"left", MoveLeft},
		{"L", MoveLeft},
		{"Right", MoveRight},
		{"r", MoveRight},
		{"none", MoveNone},
		{".", MoveNone},
		{" n ", MoveNone},
	}

	for _, tc := range tests {
		got, err := ParseMoveAction(tc.in)
		if err != nil {
			t.Errorf("ParseMoveAction(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseMoveAction(%q) = %s, expected %s", tc.in, got, tc.expected)
		}
	}

	if _, err := ParseMoveAction("jump"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("ParseMoveAction(jump) error = %v, expected ErrUnknownAction", err)
	}
}

func TestCollides(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		col      int
		expected bool
	}{
		{"obstacle in column", Row{0, 1, 0}, 1, true},
		{"stacked obstacles", Row{2, 0, 0}, 0, true},
		{"obstacle elsewhere", Row{1, 0, 0}, 2, false},
		{"empty row", Row{0, 0, 0}, 1, false},
		{"nil row", nil, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.row, tc.col); got != tc.expected {
				t.Errorf("Collides(%v, %d) = %v, expected %v", tc.row, tc.col, got, tc.expected)
			}
		})
	}
}
