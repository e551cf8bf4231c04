package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tripgames/internal/leaderboard"
	"github.com/vovakirdan/tripgames/internal/registry"
)

var (
	flagScoresRemote bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the leaderboard for a game",
	Long: `Display the saved leaderboard for the specified game.

With --remote the shared leaderboard is listed as well. --clear erases
the local leaderboard, best value and attempt history of the game; the
shared leaderboard is not touched.

Examples:
  tripgames scores breakout
  tripgames scores runner --clear
  tripgames scores memory --remote --redis localhost:6379`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresRemote, "remote", false, "Also list the shared leaderboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Erase the local scores of the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	game, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q; run 'tripgames list' to see available games", gameID)
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	mgr := a.manager(game.Ranking)
	rk := mgr.Ranking()

	if flagScoresClear {
		if err := a.clearScores(mgr); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared local scores for %s.\n", game.Title)
		return nil
	}

	fmt.Printf("Leaderboard - %s\n", game.Title)
	fmt.Println()
	printBoard(rk, mgr.Board())

	if a.store != nil {
		fmt.Println()
		fmt.Println(a.summary(rk, mgr.Status()))
		fmt.Println()
		if err := a.writeHistory(os.Stdout, rk, 5); err != nil {
			return fmt.Errorf("reading attempt history: %w", err)
		}
	}

	if !flagScoresRemote {
		return nil
	}

	fmt.Println()
	fmt.Println("Shared leaderboard")
	fmt.Println()
	if a.remote == nil {
		fmt.Println("Not connected. Set --redis or TRIPGAMES_REDIS_ADDR.")
		return nil
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), leaderboard.DefaultRemoteTimeout)
	defer cancel()
	entries, err := a.remote.Top(ctx, rk.Game, rk.Order, rk.TopN)
	if err != nil {
		return fmt.Errorf("reading shared leaderboard: %w", err)
	}
	printBoard(rk, rk.Normalize(entries))
	return nil
}

func printBoard(rk leaderboard.Ranking, entries []leaderboard.Entry) {
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tripgames play %s' to set the first one!\n", rk.Game)
		return
	}

	valueHeader := "Score"
	if rk.Order == leaderboard.FewerMoves {
		valueHeader = "Moves"
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %s\n", "Rank", "Name", valueHeader, "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %s\n", "----", "----", "-----", "----", "----")

	for i, e := range entries {
		value := e.Score
		if rk.Order == leaderboard.FewerMoves {
			value = e.Moves
		}
		date := "-"
		if !e.CreatedAt.IsZero() {
			date = e.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-4d  %-12s  %-8d  %-8s  %s\n", i+1, e.Name, value, formatSeconds(e.Seconds), date)
	}
}
