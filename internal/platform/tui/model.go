package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spikelane/internal/core"
	"github.com/vovakirdan/spikelane/internal/registry"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	reseed     bool // Pick a new seed on restart
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	best       int
	err        error
	back       bool
	quitting   bool
	overLogged bool // Whether the current game over was logged
}

// NewModel creates a new Bubble Tea model for a game that was already Reset.
func NewModel(game registry.Game, keys KeyMap, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, screenHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       keys,
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// screenHeight leaves one line for the help footer.
func screenHeight(h int) int {
	return core.Max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, screenHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionBack) {
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver && m.inputFrame.Has(core.ActionRestart) {
		m.inputFrame.Clear()
		if m.reseed {
			m.config.Seed = time.Now().UnixNano()
		}
		if err := m.game.Reset(m.config); err != nil {
			return m.fail(err)
		}
		m.gameState = m.game.State()
		m.overLogged = false
		return m, tickCmd(m.game.TickInterval())
	}

	result, err := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	if err != nil {
		return m.fail(err)
	}
	m.gameState = result.State
	m.best = core.Max(m.best, m.gameState.Score)

	if m.gameState.GameOver && !m.overLogged {
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score, "tick", m.gameState.Tick)
		m.overLogged = true
	}

	return m, tickCmd(m.game.TickInterval())
}

// fail stops the program with err.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error("game step failed", "game", m.game.ID(), "err", err)
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".spikelane", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Result is the outcome of an interactive session.
type Result struct {
	Score int  // Score of the last game
	Best  int  // Best score across restarts
	Back  bool // Player asked to return to the menu
}

// Run resets the game and plays it until the player quits.
func Run(game registry.Game, keys KeyMap, cfg core.RuntimeConfig, logger *log.Logger) (Result, error) {
	reseed := cfg.Seed == 0
	// Use time-based seed if not specified
	if reseed {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return Result{}, err
	}

	model := NewModel(game, keys, cfg, logger)
	model.reseed = reseed

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	res := Result{Score: m.gameState.Score, Best: m.best, Back: m.back}
	return res, m.err
}
