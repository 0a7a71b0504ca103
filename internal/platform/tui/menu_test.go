package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spikelane/internal/core"
)

func testEntries() []MenuEntry {
	return []MenuEntry{
		{GameID: "lanes", Title: "Lane Runner", Grid: "5x5"},
		{GameID: "spikes", Title: "Spike Dodge", Grid: "6x3", Best: 42},
	}
}

func TestMenuSelect(t *testing.T) {
	var m tea.Model = NewMenuModel(testEntries(), 80, 24)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	menu := m.(MenuModel)
	if menu.Selected() == nil || menu.Selected().GameID != "spikes" {
		t.Fatalf("Selected() = %+v, expected spikes", menu.Selected())
	}
	if !isQuit(cmd) {
		t.Error("selecting a game should close the menu")
	}
}

func TestMenuQuit(t *testing.T) {
	var m tea.Model = NewMenuModel(testEntries(), 80, 24)
	m, cmd := m.Update(runeKey('q'))

	if !m.(MenuModel).IsQuitting() || !isQuit(cmd) {
		t.Error("q should quit the menu")
	}
}

func TestMenuView(t *testing.T) {
	view := NewMenuModel(testEntries(), 80, 24).View()

	for _, want := range []string{"S P I K E L A N E", "Spike Dodge", "42", "play"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q:\n%s", want, view)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawTextColored(0, 1, "xyz", core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen produced %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("line 0 = %q, expected the drawn text", lines[0])
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("line 1 = %q, expected the drawn text", lines[1])
	}
}
