package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tripgames/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move, aim or pick
  Space        - Jump, putt, flip or select
  Mouse        - Drag the paddle or basket, drag to putt, click to tap
  Enter        - Start round / save score
  R            - Restart
  L/Tab        - Leaderboard
  Q/Ctrl+C     - Quit

Difficulty options:
  kids   - Slower objects, more lives, smaller boards
  adult  - Standard tuning (default)

Examples:
  tripgames play breakout
  tripgames play runner --difficulty kids
  tripgames play putting --seed 42
  tripgames play catch --config ./my-catch.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'tripgames list' to see available games", gameID)
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.play(gameID, a.runtimeConfig()); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
