package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tripgames/internal/config"
	"github.com/vovakirdan/tripgames/internal/core"
	"github.com/vovakirdan/tripgames/internal/engine"
	"github.com/vovakirdan/tripgames/internal/leaderboard"
	"github.com/vovakirdan/tripgames/internal/platform/tui"
	"github.com/vovakirdan/tripgames/internal/registry"
	"github.com/vovakirdan/tripgames/internal/remote"
	"github.com/vovakirdan/tripgames/internal/storage"
)

const defaultLogFile = "~/.tripgames/tripgames.log"

// app holds the process-wide services shared by every command.
type app struct {
	settings config.Settings
	logger   *log.Logger
	logFile  *os.File

	store  *storage.Store // nil when the database could not be opened
	kv     leaderboard.Eraser
	remote *remote.Redis // nil in local-only mode
}

// openApp reads settings, opens the log file, the local database and the
// optional shared leaderboard. Only a bad flag value is fatal; storage and
// remote failures degrade to in-memory and local-only operation.
func openApp(ctx context.Context) (*app, error) {
	var envFiles []string
	if flagEnvFile != "" {
		envFiles = append(envFiles, flagEnvFile)
	}
	a := &app{settings: config.LoadSettings(envFiles...)}
	if flagDBPath != "" {
		a.settings.DBPath = flagDBPath
	}
	if flagRedis != "" {
		a.settings.RedisAddr = flagRedis
	}
	if flagDifficulty != "" {
		if _, ok := core.ParseDifficulty(flagDifficulty); !ok {
			return nil, fmt.Errorf("unknown difficulty %q (use kids or adult)", flagDifficulty)
		}
	}

	a.openLog()

	store, err := storage.Open(a.settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		a.logger.Warn("scores database unavailable, using memory", "path", a.settings.DBPath, "err", err)
		a.kv = storage.NewMemory()
	} else {
		a.store = store
		a.kv = store
	}

	r, err := remote.Connect(ctx, remote.Options{
		Addr:     a.settings.RedisAddr,
		Password: a.settings.RedisPassword,
		DB:       a.settings.RedisDB,
	}, a.logger)
	if err != nil {
		if a.settings.RedisAddr != "" {
			a.logger.Warn("shared leaderboard unavailable, local only", "err", err)
		}
	} else {
		a.remote = r
	}
	return a, nil
}

func (a *app) openLog() {
	level, err := log.ParseLevel(a.settings.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	var w io.Writer = io.Discard
	if path := expandHome(flagLogFile); path != "" {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr == nil {
			f, openErr := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if openErr == nil {
				a.logFile = f
				w = f
			}
		}
	}
	a.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tripgames",
		Level:           level,
	})
}

// Close releases the database, the remote client and the log file.
func (a *app) Close() {
	if a.remote != nil {
		if err := a.remote.Close(); err != nil {
			a.logger.Warn("close remote", "err", err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("close store", "err", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// manager builds the persistence service for one game.
func (a *app) manager(rk leaderboard.Ranking) *leaderboard.Manager {
	opts := leaderboard.Options{Logger: a.logger}
	if a.remote != nil {
		opts.Remote = a.remote
	}
	if a.store != nil {
		opts.History = a.store
	}
	return leaderboard.NewManager(rk, a.kv, opts)
}

// runtimeConfig sizes the playfield to the terminal and applies flags.
func (a *app) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	cfg.ConfigPath = flagConfig
	if d, ok := core.ParseDifficulty(flagDifficulty); ok {
		cfg.Difficulty = d
	}
	return cfg
}

// play runs one game session until the player quits.
func (a *app) play(gameID string, cfg core.RuntimeConfig) error {
	r, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	mgr := a.manager(r.Ranking())
	if flagName != "" {
		if err := mgr.SetPlayerName(flagName); err != nil {
			a.logger.Warn("ignoring --name", "err", err)
		}
	}
	s := engine.NewSession(r, cfg, engine.Options{Manager: mgr, Logger: a.logger})
	a.logger.Info("session start", "game", gameID, "difficulty", cfg.Difficulty, "seed", cfg.Seed)

	runErr := tui.Run(s, cfg)
	mgr.Wait()
	return runErr
}

// boardSource feeds the scoreboard screen: the merged local and remote
// board plus a one-line summary from the attempt history.
func (a *app) boardSource(ctx context.Context) tui.BoardSource {
	return func(gameID string) ([]leaderboard.Entry, string) {
		info, ok := registry.Info(gameID)
		if !ok {
			return nil, ""
		}
		mgr := a.manager(info.Ranking)
		entries, _ := mgr.Refresh(ctx)
		return entries, a.summary(info.Ranking, mgr.Status())
	}
}

func (a *app) summary(rk leaderboard.Ranking, status leaderboard.Status) string {
	parts := []string{"Shared: " + string(status)}
	if a.store == nil {
		return strings.Join(parts, "  ")
	}
	stats, err := a.store.GetGameStats(rk.Game)
	if err != nil {
		a.logger.Warn("game stats", "game", rk.Game, "err", err)
		return strings.Join(parts, "  ")
	}
	parts = append([]string{fmt.Sprintf("Played: %d", stats.GamesCount)}, parts...)
	if rk.Order == leaderboard.FewerMoves {
		if stats.BestMoves > 0 {
			parts = append(parts, fmt.Sprintf("Best: %d moves", stats.BestMoves))
		}
	} else {
		parts = append(parts, fmt.Sprintf("Best: %d", stats.HighScore), fmt.Sprintf("Avg: %.0f", stats.AvgScore))
	}
	if !stats.LastPlayed.IsZero() {
		parts = append(parts, "Last: "+stats.LastPlayed.Local().Format("2006-01-02"))
	}
	return strings.Join(parts, "  ")
}

// clearScores wipes one game's attempt history, local board and best value.
func (a *app) clearScores(mgr *leaderboard.Manager) error {
	game := mgr.Ranking().Game
	if a.store != nil {
		if err := a.store.ClearScores(game); err != nil {
			return err
		}
	}
	if err := mgr.Clear(); err != nil {
		return err
	}
	a.logger.Info("scores cleared", "game", game)
	return nil
}

// writeHistory lists the best recorded attempts of a game. It writes
// nothing without a database.
func (a *app) writeHistory(w io.Writer, rk leaderboard.Ranking, limit int) error {
	if a.store == nil {
		return nil
	}
	best, err := a.store.HighScore(rk.Game)
	if err != nil {
		return err
	}
	attempts, err := a.store.TopScores(rk.Game, limit)
	if err != nil {
		return err
	}
	if len(attempts) == 0 {
		fmt.Fprintln(w, "No attempts recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "Best attempts (high score %d)\n\n", best)
	fmt.Fprintf(w, "  %-12s  %-6s  %-6s  %-8s  %s\n", "Name", "Score", "Moves", "Time", "Date")
	fmt.Fprintf(w, "  %-12s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "-----", "----", "----")
	for _, at := range attempts {
		date := "-"
		if !at.CreatedAt.IsZero() {
			date = at.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "  %-12s  %-6d  %-6d  %-8s  %s\n", at.Name, at.Score, at.Moves,
			formatSeconds(at.Seconds), date)
	}
	return nil
}

func formatSeconds(sec float64) string {
	return (time.Duration(sec*1000) * time.Millisecond).Round(100 * time.Millisecond).String()
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, path[1:])
}
