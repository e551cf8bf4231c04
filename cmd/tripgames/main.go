// tripgames is a collection of short mini-games for the terminal.
//
// Usage:
//
//	tripgames list              - List available games
//	tripgames play <game>       - Play a game
//	tripgames menu              - Start menu to pick games interactively
//	tripgames scores <game>     - Show the leaderboard for a game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.tripgames/scores.db)
//	--redis <addr>        - Shared leaderboard address (optional)
//	--difficulty <level>  - kids or adult
//	--name <player>       - Pre-fill the player name
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tripgames/internal/games/breakout"
	_ "github.com/vovakirdan/tripgames/internal/games/catch"
	_ "github.com/vovakirdan/tripgames/internal/games/constellation"
	_ "github.com/vovakirdan/tripgames/internal/games/memory"
	_ "github.com/vovakirdan/tripgames/internal/games/putting"
	_ "github.com/vovakirdan/tripgames/internal/games/runner"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagRedis      string
	flagDifficulty string
	flagConfig     string
	flagLogFile    string
	flagEnvFile    string
	flagName       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tripgames",
	Short: "Trip Games - quick mini-games in your terminal",
	Long: `Trip Games is a set of short mini-games for the road: breakout,
an endless runner, mini golf, a constellation tracer, color catch and
a memory match. Scores are kept locally and, when a shared leaderboard
is configured, synced to it in the background.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View a game's leaderboard

Examples:
  tripgames list
  tripgames play breakout
  tripgames play memory --difficulty kids
  tripgames menu --redis localhost:6379
  tripgames scores putting --remote`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from TRIPGAMES_DB or ~/.tripgames/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagRedis, "redis", "", "Shared leaderboard address (default from TRIPGAMES_REDIS_ADDR)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: kids or adult")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env", "", "Path to a .env file")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "", "Player name to pre-fill on the start screen")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
