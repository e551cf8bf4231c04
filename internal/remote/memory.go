package remote

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/vovakirdan/tripgames/internal/leaderboard"
)

// Memory is an in-process ranked list used by tests and the offline demo.
type Memory struct {
	mu    sync.RWMutex
	lists map[string][]leaderboard.Entry
	next  int

	// Err, when set, is returned by every call.
	Err error
}

var _ leaderboard.Remote = (*Memory)(nil)

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{lists: make(map[string][]leaderboard.Entry)}
}

// Insert appends the entry, keeping its id when set.
func (m *Memory) Insert(ctx context.Context, game string, order leaderboard.Order, e leaderboard.Entry) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	m.next++
	if e.ID == "" {
		e.ID = "mem-" + strconv.Itoa(m.next)
	}
	e.CreatedAt = time.Now().UTC()
	m.lists[Key(game)] = append(m.lists[Key(game)], e)
	return e.ID, nil
}

// Top returns up to limit entries in ranking order.
func (m *Memory) Top(ctx context.Context, game string, order leaderboard.Order, limit int) ([]leaderboard.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := append([]leaderboard.Entry(nil), m.lists[Key(game)]...)
	r := leaderboard.Ranking{Order: order}
	sort.SliceStable(out, func(i, j int) bool { return r.Better(out[i], out[j]) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Len returns the number of stored records for a game.
func (m *Memory) Len(game string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.lists[Key(game)])
}
