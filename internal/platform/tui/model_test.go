package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spikelane/internal/config"
	"github.com/vovakirdan/spikelane/internal/core"
	"github.com/vovakirdan/spikelane/internal/games/spikes"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultSpikesConfig()
	cfg.Grid = config.GridConfig{Rows: 3, Columns: 3}
	cfg.Player.StartColumn = 1
	cfg.Spawn = config.SpawnConfig{Mode: config.SpawnPattern, Pattern: [][]int{{1}}}
	cfg.Difficulty.Enabled = false

	g := spikes.NewWithConfig(spikes.Variant{ID: "test", Title: "Test"}, cfg)
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}
	if err := g.Reset(rc); err != nil {
		t.Fatal(err)
	}
	return NewModel(g, DefaultKeyMap(), rc, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelTick(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, TickMsg(time.Now()))
	if m.gameState.Tick != 1 || m.gameState.Score != 1 {
		t.Errorf("state = %+v, expected tick 1 score 1", m.gameState)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelMoveAndGameOver(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))
	if !m.gameState.GameOver {
		t.Fatal("standing in the spike lane should end the game on tick 3")
	}
	if m.best != 2 {
		t.Errorf("best = %d, expected 2", m.best)
	}

	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.gameState.GameOver || m.gameState.Tick != 0 {
		t.Errorf("state after restart = %+v, expected a fresh game", m.gameState)
	}

	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.gameState.GameOver {
		t.Error("moving left before the spike arrives should survive")
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m := newTestModel(t)

	quit, cmd := update(t, m, runeKey('q'))
	if !quit.quitting || !isQuit(cmd) {
		t.Error("q should quit the program")
	}
	if quit.View() != "" {
		t.Error("View() should be empty once quitting")
	}

	back, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.back || !isQuit(cmd) {
		t.Error("esc should return to the menu")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("view missing HUD:\n%s", view)
	}
	if !strings.Contains(view, "move left") {
		t.Errorf("view missing help footer:\n%s", view)
	}
	if m.screen.Height() != 19 {
		t.Errorf("screen height = %d, expected 19", m.screen.Height())
	}
}

type failingGame struct {
	*spikes.Game
}

var errBoom = errors.New("boom")

func (g failingGame) Step(core.InputFrame) (core.StepResult, error) {
	return core.StepResult{}, errBoom
}

func TestModelStepError(t *testing.T) {
	g := failingGame{spikes.New(spikes.Variants[0])}
	m := NewModel(g, DefaultKeyMap(), core.DefaultConfig(), nil)

	m, cmd := update(t, m, TickMsg(time.Now()))
	if !errors.Is(m.err, errBoom) {
		t.Errorf("err = %v, expected errBoom", m.err)
	}
	if !isQuit(cmd) {
		t.Error("a failed step should quit the program")
	}
}
