package main

import "testing"

func TestGridLabel(t *testing.T) {
	tests := []struct {
		id, expected string
	}{
		{"spikes", "6x3"},
		{"lanes", "5x5"},
		{"tetris", "?"},
	}
	for _, tt := range tests {
		if got := gridLabel(tt.id); got != tt.expected {
			t.Errorf("gridLabel(%q) = %q, expected %q", tt.id, got, tt.expected)
		}
	}
}

func TestMenuEntries(t *testing.T) {
	entries := menuEntries(map[string]int{"spikes": 12})

	found := false
	for _, e := range entries {
		if e.GameID == "spikes" {
			found = true
			if e.Best != 12 || e.Grid != "6x3" || e.Title == "" {
				t.Errorf("spikes entry = %+v, expected best 12 on a 6x3 grid", e)
			}
		}
		if e.GameID == "lanes" && e.Best != 0 {
			t.Errorf("lanes best = %d, expected 0", e.Best)
		}
	}
	if !found {
		t.Error("menu should list the spikes game")
	}
}

func TestSimCommandFlags(t *testing.T) {
	for _, name := range []string{"ticks", "script", "clear", "config", "difficulty"} {
		if simCmd.Flags().Lookup(name) == nil {
			t.Errorf("sim command missing --%s", name)
		}
	}
	for _, name := range []string{"seed", "interval", "log-level", "log-file"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root command missing --%s", name)
		}
	}
}
