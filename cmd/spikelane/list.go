package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spikelane/internal/config"
	"github.com/vovakirdan/spikelane/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all registered games with their default grid size.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-5s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Grid", "About")
	fmt.Printf("  %-*s  %-*s  %-5s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "-----")

	// Print games
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %-5s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, gridLabel(g.ID), g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'spikelane play <id>' to play a game.")
}

// gridLabel returns "rows x columns" of a game's default config.
func gridLabel(gameID string) string {
	cfg, ok := config.DefaultFor(gameID)
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%dx%d", cfg.Grid.Rows, cfg.Grid.Columns)
}
