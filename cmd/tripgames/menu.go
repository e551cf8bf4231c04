package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tripgames/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  D            - Toggle kids/adult difficulty
  Tab          - Scoreboard
  Q            - Quit

Examples:
  tripgames menu
  tripgames menu --fps 30
  tripgames menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.runtimeConfig()
	last := ""

	for {
		menuResult, err := tui.RunMenu(cfg, last)
		if err != nil {
			return err
		}

		// Keep size and difficulty changes made in the menu
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(a.boardSource(cmd.Context()), cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}
		last = menuResult.GameID

		// Fresh seed per round unless pinned by --seed
		round := cfg
		round.Seed = flagSeed
		if err := a.play(last, round); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			a.logger.Error("session failed", "game", last, "err", err)
		}
	}
}
