// Package registry maps game ids to rules factories. Game packages register
// themselves from init(), so hosts discover games by importing them.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tripgames/internal/engine"
	"github.com/vovakirdan/tripgames/internal/leaderboard"
)

// GameInfo describes a registered game without creating a session for it.
type GameInfo struct {
	ID      string
	Title   string
	Ranking leaderboard.Ranking
}

// Factory creates fresh rules for one session.
type Factory func() engine.Rules

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu    sync.RWMutex
	games = make(map[string]entry)
)

// Register adds a game. The factory is called once to read the game's
// metadata. Registering an id twice panics.
func Register(id string, f Factory) {
	r := f()
	if r.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds %q", id, r.ID()))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := games[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{
		info:    GameInfo{ID: id, Title: r.Title(), Ranking: r.Ranking()},
		factory: f,
	}
}

// List returns every registered game sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(games))
	for _, e := range games {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Info returns the metadata of one game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := games[id]
	return e.info, ok
}

// Create builds new rules for a game.
func Create(id string) (engine.Rules, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}
