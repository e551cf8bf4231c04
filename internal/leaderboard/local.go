package leaderboard

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// KV is the local persistent key-value store. Values are JSON text.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Eraser is a KV store that can also remove keys.
type Eraser interface {
	KV
	Delete(key string) error
}

// Local reads and writes one game's persisted keys:
// <game>Leaderboard, <game>HighScore and <game>PlayerName.
type Local struct {
	kv     KV
	game   string
	logger *log.Logger
}

// NewLocal binds a KV store to a game id.
func NewLocal(kv KV, game string, logger *log.Logger) *Local {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Local{kv: kv, game: game, logger: logger}
}

func (l *Local) key(suffix string) string {
	return l.game + suffix
}

// Board returns the stored leaderboard. A missing or corrupt value yields an
// empty board.
func (l *Local) Board() []Entry {
	var board []Entry
	if !l.read(l.key("Leaderboard"), &board) {
		return []Entry{}
	}
	return board
}

// SaveBoard persists the leaderboard.
func (l *Local) SaveBoard(board []Entry) error {
	return l.write(l.key("Leaderboard"), board)
}

// HighScore returns the stored best value, 0 when absent.
func (l *Local) HighScore() int {
	var v int
	if !l.read(l.key("HighScore"), &v) {
		return 0
	}
	return v
}

// SetHighScore persists the best value.
func (l *Local) SetHighScore(v int) error {
	return l.write(l.key("HighScore"), v)
}

// Clear removes the stored leaderboard and best value. The remembered
// player name is kept.
func (l *Local) Clear() error {
	if l.kv == nil {
		return nil
	}
	e, ok := l.kv.(Eraser)
	if !ok {
		return fmt.Errorf("leaderboard: store for %s cannot delete keys", l.game)
	}
	for _, key := range []string{l.key("Leaderboard"), l.key("HighScore")} {
		if err := e.Delete(key); err != nil {
			return fmt.Errorf("leaderboard: cannot delete %s: %w", key, err)
		}
	}
	return nil
}

// PlayerName returns the remembered player name.
func (l *Local) PlayerName() string {
	var name string
	if !l.read(l.key("PlayerName"), &name) {
		return ""
	}
	return name
}

// SetPlayerName remembers the player name.
func (l *Local) SetPlayerName(name string) error {
	return l.write(l.key("PlayerName"), name)
}

func (l *Local) read(key string, dst any) bool {
	if l.kv == nil {
		return false
	}
	raw, ok, err := l.kv.Get(key)
	if err != nil {
		l.logger.Warn("local read failed", "key", key, "err", err)
		return false
	}
	if !ok || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		l.logger.Warn("corrupt local value, using default", "key", key, "err", err)
		return false
	}
	return true
}

func (l *Local) write(key string, v any) error {
	if l.kv == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("leaderboard: cannot encode %s: %w", key, err)
	}
	if err := l.kv.Set(key, string(data)); err != nil {
		return fmt.Errorf("leaderboard: cannot write %s: %w", key, err)
	}
	return nil
}
