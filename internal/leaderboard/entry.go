// Package leaderboard ranks finished attempts, keeps the per-game top-N list
// in local storage and mirrors qualifying entries to an optional remote
// ranked list.
package leaderboard

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxNameLen is the maximum player name length in runes.
const MaxNameLen = 10

// ErrEmptyName is returned when a name is empty after trimming.
var ErrEmptyName = errors.New("leaderboard: name is empty")

// Entry is one leaderboard record.
type Entry struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	Moves     int       `json:"moves,omitempty"`
	Seconds   float64   `json:"seconds,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Order selects how entries are ranked.
type Order int

const (
	HigherScore Order = iota // Score descending, faster time wins ties
	FewerMoves               // Moves ascending, faster time wins ties
)

func (o Order) String() string {
	if o == FewerMoves {
		return "fewer-moves"
	}
	return "higher-score"
}

// Ranking describes one game's leaderboard policy.
type Ranking struct {
	Game     string
	Order    Order
	TopN     int
	MinScore int // HigherScore entries must score strictly above this
}

// Better reports whether a ranks strictly ahead of b.
func (r Ranking) Better(a, b Entry) bool {
	switch r.Order {
	case FewerMoves:
		if a.Moves != b.Moves {
			return a.Moves < b.Moves
		}
	default:
		if a.Score != b.Score {
			return a.Score > b.Score
		}
	}
	return a.Seconds < b.Seconds
}

// Key renders an entry's ranking value for display.
func (r Ranking) Key(e Entry) string {
	if r.Order == FewerMoves {
		return fmt.Sprintf("%d moves %.1fs", e.Moves, e.Seconds)
	}
	return fmt.Sprintf("%d", e.Score)
}

// Eligible reports whether e meets the game's threshold for name entry.
func (r Ranking) Eligible(e Entry) bool {
	if r.Order == FewerMoves {
		return e.Moves > 0
	}
	return e.Score > r.MinScore
}

// Qualifies reports whether e is eligible and would change the sorted board:
// it beats the same player's existing record, or it fits into the top-N.
// The player's name on e is used for the same-name check when set.
func (r Ranking) Qualifies(board []Entry, e Entry) bool {
	if !r.Eligible(e) {
		return false
	}
	if k := nameKey(e.Name); k != "" {
		for _, old := range board {
			if nameKey(old.Name) == k {
				return r.Better(e, old)
			}
		}
	}
	if len(board) < r.limit() {
		return true
	}
	return r.Better(e, board[len(board)-1])
}

// Merge inserts e into a copy of board. An entry with the same name
// (case-insensitive, trimmed) is replaced only when e is strictly better.
// The result is sorted and truncated to TopN. The second return value
// reports whether e is part of the result.
func (r Ranking) Merge(board []Entry, e Entry) ([]Entry, bool) {
	out := make([]Entry, 0, len(board)+1)
	k := nameKey(e.Name)
	replaced, found := false, false
	for _, old := range board {
		if nameKey(old.Name) == k {
			found = true
			if r.Better(e, old) {
				out = append(out, e)
				replaced = true
				continue
			}
		}
		out = append(out, old)
	}
	if !found {
		out = append(out, e)
	}
	r.sort(out)
	out = r.truncate(out)

	if found && !replaced {
		return out, false
	}
	for _, x := range out {
		if x == e {
			return out, true
		}
	}
	return out, false
}

// Normalize deduplicates entries by name keeping each player's best record,
// then sorts and truncates. Used for lists read back from a remote store,
// which is append-only.
func (r Ranking) Normalize(entries []Entry) []Entry {
	best := make(map[string]int)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		k := nameKey(e.Name)
		if k == "" {
			continue
		}
		if i, ok := best[k]; ok {
			if r.Better(e, out[i]) {
				out[i] = e
			}
			continue
		}
		best[k] = len(out)
		out = append(out, e)
	}
	r.sort(out)
	return r.truncate(out)
}

func (r Ranking) sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return r.Better(entries[i], entries[j])
	})
}

func (r Ranking) truncate(entries []Entry) []Entry {
	if n := r.limit(); len(entries) > n {
		return entries[:n]
	}
	return entries
}

func (r Ranking) limit() int {
	if r.TopN <= 0 {
		return 5
	}
	return r.TopN
}

// ValidateName trims the name and truncates it to MaxNameLen runes.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLen]))
	}
	return name, nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
