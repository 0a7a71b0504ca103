// spikelane is a terminal game about dodging spikes that scroll down lanes.
//
// Usage:
//
//	spikelane list              - List available games
//	spikelane play <game>       - Play a game
//	spikelane menu              - Start menu to pick games interactively
//	spikelane sim <game>        - Run a game headless with an autopilot
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--interval <dur>     - Override the tick interval (e.g. 250ms)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Append logs to a file
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/spikelane/internal/games/spikes"
)

var (
	// Global flags
	flagSeed     int64
	flagInterval time.Duration
	flagLogLevel string
	flagLogFile  string

	// Game flags shared by play, menu and sim
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spikelane",
	Short: "Spikelane - dodge the spikes in your terminal",
	Long: `Spikelane is a terminal game: spikes scroll toward you one row per tick
and you sidestep between lanes to avoid them.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  sim      - Run a game without a UI, steered by an autopilot

Examples:
  spikelane list
  spikelane play spikes
  spikelane menu
  spikelane sim lanes --ticks 100 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().DurationVar(&flagInterval, "interval", 0, "Tick interval override (0 = game config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
}

// addGameFlags registers the flags that select and tune a game config.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}
