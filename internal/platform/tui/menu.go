package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuEntry is one row of the game picker.
type MenuEntry struct {
	GameID      string
	Title       string
	Description string
	Grid        string // e.g. "6x3"
	Best        int    // Best score this session, 0 when not played
}

// MenuModel is the Bubble Tea model for the game picker.
type MenuModel struct {
	entries  []MenuEntry
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	quitting bool
	selected *MenuEntry // Set when user selects a game
}

// NewMenuModel creates a new menu model.
func NewMenuModel(entries []MenuEntry, width, height int) MenuModel {
	m := MenuModel{
		entries: entries,
		help:    help.New(),
		keys:    DefaultMenuKeyMap(),
		width:   width,
		height:  height,
	}
	m.help.Width = width
	m.table = m.createTable()
	return m
}

// createTable creates the picker table sized for the current window.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 14},
		{Title: "Grid", Width: 6},
		{Title: "Best", Width: 6},
		{Title: "About", Width: 30},
	}
	// Give the description the remaining width
	if rest := m.width - 4 - 14 - 6 - 6 - 8; rest > columns[3].Width {
		columns[3].Width = rest
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		best := "-"
		if e.Best > 0 {
			best = fmt.Sprintf("%d", e.Best)
		}
		rows[i] = table.Row{e.Title, e.Grid, best, e.Description}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(len(rows)+1, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.entries) > 0 {
				selected := m.entries[m.table.Cursor()]
				m.selected = &selected
				return m, tea.Quit // Exit menu to start game
			}
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("S P I K E L A N E", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the selected entry, or nil if none selected.
func (m MenuModel) Selected() *MenuEntry {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID string
	Width  int // Terminal size when the menu closed
	Height int
	Quit   bool
}

// RunMenu runs the picker and returns the selection.
func RunMenu(entries []MenuEntry, width, height int) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(entries, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, err
	}

	m, ok := final.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}
	return MenuResult{GameID: m.Selected().GameID, Width: m.width, Height: m.height}, nil
}
