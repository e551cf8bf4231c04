package leaderboard_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tripgames/internal/leaderboard"
	"github.com/vovakirdan/tripgames/internal/remote"
	"github.com/vovakirdan/tripgames/internal/storage"
)

var scoreRanking = leaderboard.Ranking{Game: "breakout", Order: leaderboard.HigherScore, TopN: 5}

func TestMergeDeduplicatesByName(t *testing.T) {
	board, added := scoreRanking.Merge(nil, leaderboard.Entry{Name: "Ana", Score: 100})
	if !added || len(board) != 1 {
		t.Fatalf("first merge: added=%v len=%d", added, len(board))
	}

	// Worse score under the same name leaves the board unchanged.
	board, added = scoreRanking.Merge(board, leaderboard.Entry{Name: " ana ", Score: 50})
	if added {
		t.Error("worse entry should not be added")
	}
	if len(board) != 1 || board[0].Score != 100 {
		t.Errorf("board = %+v, expected single entry with 100", board)
	}

	// Equal is not strictly better.
	_, added = scoreRanking.Merge(board, leaderboard.Entry{Name: "ANA", Score: 100})
	if added {
		t.Error("equal entry should not replace")
	}

	// Better replaces.
	board, added = scoreRanking.Merge(board, leaderboard.Entry{Name: "ANA", Score: 150})
	if !added || len(board) != 1 || board[0].Score != 150 {
		t.Errorf("board = %+v, expected single entry with 150", board)
	}
}

func TestMergeTruncatesToTopN(t *testing.T) {
	var board []leaderboard.Entry
	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	for i, n := range names {
		board, _ = scoreRanking.Merge(board, leaderboard.Entry{Name: n, Score: (i + 1) * 10})
		if len(board) > scoreRanking.TopN {
			t.Fatalf("board grew to %d entries", len(board))
		}
	}
	if board[0].Name != "g" || board[4].Name != "c" {
		t.Errorf("board order = %+v", board)
	}

	_, added := scoreRanking.Merge(board, leaderboard.Entry{Name: "z", Score: 5})
	if added {
		t.Error("entry below the cut should not be added")
	}
}

func TestFewerMovesTimeTiebreak(t *testing.T) {
	r := leaderboard.Ranking{Game: "memory", Order: leaderboard.FewerMoves, TopN: 5}

	board, _ := r.Merge(nil, leaderboard.Entry{Name: "a", Moves: 12, Seconds: 40})
	board, _ = r.Merge(board, leaderboard.Entry{Name: "b", Moves: 12, Seconds: 30})
	board, _ = r.Merge(board, leaderboard.Entry{Name: "c", Moves: 10, Seconds: 90})

	want := []string{"c", "b", "a"}
	for i, n := range want {
		if board[i].Name != n {
			t.Errorf("board[%d] = %s, expected %s", i, board[i].Name, n)
		}
	}
}

func TestQualifies(t *testing.T) {
	board := []leaderboard.Entry{{Name: "a", Score: 50}}

	if scoreRanking.Qualifies(board, leaderboard.Entry{Name: "x", Score: 0}) {
		t.Error("zero score should not qualify")
	}
	if !scoreRanking.Qualifies(board, leaderboard.Entry{Name: "x", Score: 10}) {
		t.Error("non-full board should accept any eligible score")
	}
	if scoreRanking.Qualifies(board, leaderboard.Entry{Name: "A", Score: 40}) {
		t.Error("worse score for an existing name should not qualify")
	}

	r := leaderboard.Ranking{Order: leaderboard.FewerMoves, TopN: 5}
	if r.Qualifies(nil, leaderboard.Entry{Moves: 0}) {
		t.Error("zero moves should not qualify")
	}
}

func TestNormalize(t *testing.T) {
	in := []leaderboard.Entry{
		{Name: "a", Score: 10},
		{Name: "A", Score: 30},
		{Name: "b", Score: 20},
		{Name: "  ", Score: 99},
	}
	out := scoreRanking.Normalize(in)
	if len(out) != 2 || out[0].Score != 30 || out[1].Name != "b" {
		t.Errorf("Normalize() = %+v", out)
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"  Ana  ", "Ana", false},
		{"", "", true},
		{"   ", "", true},
		{"Bartholomew the Great", "Bartholome", false},
		{"Ñandú", "Ñandú", false},
	}
	for _, tc := range tests {
		got, err := leaderboard.ValidateName(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ValidateName(%q) = (%q, %v), expected (%q, err=%v)", tc.in, got, err, tc.want, tc.wantErr)
		}
	}
}

func TestLocalCorruptValue(t *testing.T) {
	kv := storage.NewMemory()
	kv.Set("breakoutLeaderboard", "{not json")
	kv.Set("breakoutHighScore", "\"x\"")

	local := leaderboard.NewLocal(kv, "breakout", nil)
	if b := local.Board(); len(b) != 0 {
		t.Errorf("corrupt board should load empty, got %+v", b)
	}
	if hs := local.HighScore(); hs != 0 {
		t.Errorf("corrupt high score should load 0, got %d", hs)
	}
}

func TestManagerRecordAttemptPersists(t *testing.T) {
	kv := storage.NewMemory()
	m := leaderboard.NewManager(scoreRanking, kv, leaderboard.Options{})

	if m.Status() != leaderboard.StatusOffline {
		t.Errorf("Status() = %s, expected offline", m.Status())
	}

	if _, err := m.RecordAttempt("  ", leaderboard.Entry{Score: 10}); !errors.Is(err, leaderboard.ErrEmptyName) {
		t.Errorf("RecordAttempt with empty name err = %v, expected ErrEmptyName", err)
	}
	if len(m.Board()) != 0 {
		t.Error("empty name must not change the board")
	}

	board, err := m.RecordAttempt("Ana", leaderboard.Entry{Score: 120})
	if err != nil {
		t.Fatalf("RecordAttempt() failed: %v", err)
	}
	if len(board) != 1 || board[0].ID == "" {
		t.Errorf("board = %+v, expected one entry with an id", board)
	}

	raw, ok, _ := kv.Get("breakoutLeaderboard")
	if !ok || !strings.Contains(raw, "Ana") {
		t.Errorf("local leaderboard not persisted: %q", raw)
	}

	// A fresh manager reads the same board back.
	again := leaderboard.NewManager(scoreRanking, kv, leaderboard.Options{})
	if b := again.Board(); len(b) != 1 || b[0].Score != 120 {
		t.Errorf("reloaded board = %+v", b)
	}
	if again.PlayerName() != "Ana" {
		t.Errorf("PlayerName() = %q, expected Ana", again.PlayerName())
	}
}

func TestManagerRemoteFailureKeepsLocal(t *testing.T) {
	kv := storage.NewMemory()
	rem := remote.NewMemory()
	rem.Err = errors.New("network down")

	m := leaderboard.NewManager(scoreRanking, kv, leaderboard.Options{Remote: rem, Timeout: time.Second})
	board, err := m.RecordAttempt("Bo", leaderboard.Entry{Score: 70})
	if err != nil {
		t.Fatalf("RecordAttempt() should not surface remote errors: %v", err)
	}
	m.Wait()

	if len(board) != 1 || len(m.Board()) != 1 {
		t.Errorf("local board should hold the entry, got %+v", m.Board())
	}
	if m.Status() != leaderboard.StatusError {
		t.Errorf("Status() = %s, expected error", m.Status())
	}

	refreshed, err := m.Refresh(context.Background())
	if err == nil {
		t.Error("Refresh() should report the remote error")
	}
	if len(refreshed) != 1 {
		t.Errorf("Refresh() should fall back to the local board, got %+v", refreshed)
	}
}

func TestManagerRemoteMirrorsQualifyingEntries(t *testing.T) {
	rem := remote.NewMemory()
	m := leaderboard.NewManager(scoreRanking, storage.NewMemory(), leaderboard.Options{Remote: rem})

	local, _ := m.RecordAttempt("Cy", leaderboard.Entry{Score: 90})
	m.RecordAttempt("cy", leaderboard.Entry{Score: 40}) // worse, not mirrored
	m.Wait()

	if n := rem.Len("breakout"); n != 1 {
		t.Errorf("remote holds %d entries, expected 1", n)
	}
	mirrored, _ := rem.Top(context.Background(), "breakout", leaderboard.HigherScore, 5)
	if len(local) != 1 || len(mirrored) != 1 || mirrored[0].ID != local[0].ID {
		t.Errorf("remote id %+v should match local id %+v", mirrored, local)
	}
	if m.Status() != leaderboard.StatusOnline {
		t.Errorf("Status() = %s, expected online", m.Status())
	}

	// Another device's entry shows up after a refresh.
	rem.Insert(context.Background(), "breakout", leaderboard.HigherScore, leaderboard.Entry{Name: "Di", Score: 300})
	board, err := m.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	if len(board) != 2 || board[0].Name != "Di" {
		t.Errorf("Refresh() = %+v, expected Di first", board)
	}
}

func TestManagerFinishTracksBest(t *testing.T) {
	r := leaderboard.Ranking{Game: "putting", Order: leaderboard.FewerMoves, TopN: 5}
	m := leaderboard.NewManager(r, storage.NewMemory(), leaderboard.Options{})

	if !m.Finish(leaderboard.Entry{Name: "a", Moves: 20, Seconds: 100}) {
		t.Error("first finished round should qualify")
	}
	m.Finish(leaderboard.Entry{Name: "a", Moves: 25})
	if m.HighScore() != 20 {
		t.Errorf("best = %d, expected 20", m.HighScore())
	}
	m.Finish(leaderboard.Entry{Name: "a", Moves: 17})
	if m.HighScore() != 17 {
		t.Errorf("best = %d, expected 17", m.HighScore())
	}
}

func TestManagerClearKeepsPlayerName(t *testing.T) {
	kv := storage.NewMemory()
	m := leaderboard.NewManager(scoreRanking, kv, leaderboard.Options{})
	if _, err := m.RecordAttempt("Ana", leaderboard.Entry{Score: 50}); err != nil {
		t.Fatalf("RecordAttempt() failed: %v", err)
	}
	m.Finish(leaderboard.Entry{Name: "Ana", Score: 50})

	if err := m.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if b := m.Board(); len(b) != 0 {
		t.Errorf("board after Clear = %+v, expected empty", b)
	}
	if m.HighScore() != 0 {
		t.Errorf("HighScore() = %d after Clear, expected 0", m.HighScore())
	}
	for _, key := range []string{"breakoutLeaderboard", "breakoutHighScore"} {
		if _, ok, _ := kv.Get(key); ok {
			t.Errorf("key %s still stored", key)
		}
	}
	if m.PlayerName() != "Ana" {
		t.Errorf("PlayerName() = %q, expected Ana to survive Clear", m.PlayerName())
	}
}

type setOnlyKV struct{ data map[string]string }

func (s setOnlyKV) Get(key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s setOnlyKV) Set(key, value string) error {
	s.data[key] = value
	return nil
}

func TestLocalClearNeedsEraser(t *testing.T) {
	local := leaderboard.NewLocal(setOnlyKV{data: map[string]string{}}, "breakout", nil)
	if err := local.Clear(); err == nil {
		t.Error("Clear() on a store without Delete should fail")
	}
}
