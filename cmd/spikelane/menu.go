package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spikelane/internal/platform/tui"
	"github.com/vovakirdan/spikelane/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.
Best scores are kept for the session.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q/Esc        - Quit

Examples:
  spikelane menu
  spikelane menu --difficulty hard`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()
	bests := make(map[string]int)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(menuEntries(bests), cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg.ScreenW, cfg.ScreenH = menuResult.Width, menuResult.Height

		if menuResult.Quit || menuResult.GameID == "" {
			return nil
		}
		gameID := menuResult.GameID

		keys, err := prepareGame(gameID)
		if err != nil {
			return err
		}

		game, err := registry.Create(gameID)
		if err != nil {
			return err
		}

		res, err := tui.Run(game, keys, cfg, logger)
		if err != nil {
			logger.Error("game failed", "game", gameID, "err", err)
			return err
		}
		bests[gameID] = max(bests[gameID], res.Best)

		// Loop back to menu
	}
}

// menuEntries lists the registered games with their session best scores.
func menuEntries(bests map[string]int) []tui.MenuEntry {
	games := registry.List()
	entries := make([]tui.MenuEntry, 0, len(games))
	for _, g := range games {
		entries = append(entries, tui.MenuEntry{
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
			Grid:        gridLabel(g.ID),
			Best:        bests[g.ID],
		})
	}
	return entries
}
