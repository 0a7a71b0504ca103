package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spikelane/internal/core"
	"github.com/vovakirdan/spikelane/internal/games/spikes"
	"github.com/vovakirdan/spikelane/internal/lane"
	"github.com/vovakirdan/spikelane/internal/platform/headless"
	"github.com/vovakirdan/spikelane/internal/registry"
)

var (
	flagTicks  int
	flagScript string
	flagClear  bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless",
	Long: `Run a game without the TUI. Frames are printed to stdout, one per tick.
By default an autopilot steers the player; --script replays fixed moves
instead (l/left, r/right, ./n/none, separated by commas or spaces).

The run ends on game over, after --ticks ticks, or on Ctrl+C.

Examples:
  spikelane sim spikes --seed 42
  spikelane sim lanes --ticks 50 --interval 50ms --clear
  spikelane sim spikes --script "l,.,r,r" --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	addGameFlags(simCmd)
	simCmd.Flags().IntVar(&flagTicks, "ticks", 200, "Stop after this many ticks (0 = until game over)")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Moves to replay instead of the autopilot")
	simCmd.Flags().BoolVar(&flagClear, "clear", false, "Clear the terminal before each frame")
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'spikelane list' to see available games)", gameID)
	}

	// Frames own stdout; logs go to stderr
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := prepareGame(gameID); err != nil {
		return err
	}

	g, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	game, ok := g.(*spikes.Game)
	if !ok {
		return fmt.Errorf("game %q cannot run headless", gameID)
	}

	rc := core.RuntimeConfig{TickInterval: flagInterval, Seed: flagSeed}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(rc); err != nil {
		return err
	}

	frames := headless.NewTextRenderer(cmd.OutOrStdout(), game.Title(), flagClear)
	var (
		in  lane.InputSource
		out lane.Renderer = frames
	)
	if flagScript != "" {
		script, err := headless.ParseScript(flagScript)
		if err != nil {
			return err
		}
		in = script
	} else {
		pilot := headless.NewAutopilot()
		in, out = pilot, headless.Tee(frames, pilot)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("simulation started", "game", gameID, "seed", rc.Seed, "interval", game.TickInterval())
	err = game.Engine().Run(ctx, in, out, lane.RunOptions{Logger: logger, MaxTicks: flagTicks})
	snap := game.Engine().Snapshot()

	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("simulation interrupted", "tick", snap.Tick, "score", snap.Score)
		return nil
	case err != nil:
		logger.Error("simulation failed", "tick", snap.Tick, "err", err)
		return err
	}

	logger.Info("simulation finished",
		"tick", snap.Tick,
		"score", snap.Score,
		"dodged", snap.Dodged,
		"game_over", snap.GameOver)
	return nil
}
