package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spikelane/internal/config"
	"github.com/vovakirdan/spikelane/internal/core"
	"github.com/vovakirdan/spikelane/internal/games/spikes"
	"github.com/vovakirdan/spikelane/internal/platform/tui"
	"github.com/vovakirdan/spikelane/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (default bindings, remappable in the game config):
  Left/A     - Move one lane left
  Right/D    - Move one lane right
  P          - Pause
  R          - Restart (after game over)
  Esc        - Back
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a text screenshot

Difficulty options:
  easy   - Start at lowest difficulty, wider gaps between spikes
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, tighter gaps and a shorter start delay
  fixed  - No progression, stays at config's initial level

Examples:
  spikelane play spikes
  spikelane play lanes --difficulty hard
  spikelane play spikes --config ./my-spikes.yaml --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'spikelane list' to see available games)", gameID)
	}

	// The terminal belongs to Bubble Tea, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	keys, err := prepareGame(gameID)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	res, err := tui.Run(game, keys, runtimeConfig(), logger)
	if err != nil {
		logger.Error("game failed", "game", gameID, "err", err)
		return err
	}

	fmt.Printf("%s: score %d, best %d\n", game.Title(), res.Score, res.Best)
	return nil
}

// prepareGame applies the game flags and loads the game config up front, so
// config errors are reported before the terminal switches to the alt screen.
// It returns the key bindings from the config.
func prepareGame(gameID string) (tui.KeyMap, error) {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return tui.KeyMap{}, err
		}
	}
	spikes.SetConfigPath(flagConfig)
	spikes.SetDifficultyPreset(flagDifficulty)

	cfg, err := config.Load(gameID, flagConfig)
	if err != nil {
		return tui.KeyMap{}, err
	}
	return tui.NewKeyMap(cfg.Keys), nil
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickInterval = flagInterval
	cfg.Seed = flagSeed
	return cfg
}
