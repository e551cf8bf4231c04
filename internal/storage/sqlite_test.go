package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreKV(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("breakoutHighScore"); err != nil || ok {
		t.Fatalf("Get() on missing key = (ok=%v, err=%v), expected (false, nil)", ok, err)
	}

	if err := store.Set("breakoutHighScore", "120"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("breakoutHighScore", "180"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get("breakoutHighScore")
	if err != nil || !ok {
		t.Fatalf("Get() = (ok=%v, err=%v)", ok, err)
	}
	if v != "180" {
		t.Errorf("Get() = %q, expected %q", v, "180")
	}

	if err := store.Delete("breakoutHighScore"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get("breakoutHighScore"); ok {
		t.Error("key should be gone after Delete()")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveAttempt("runner", "ana", score, 0, 12.5); err != nil {
			t.Fatalf("SaveAttempt() failed: %v", err)
		}
	}
	if _, err := store.SaveAttempt("catch", "bo", 500, 0, 60); err != nil {
		t.Fatalf("SaveAttempt() failed: %v", err)
	}

	scores, err := store.TopScores("runner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Name != "ana" || scores[0].Seconds != 12.5 {
		t.Errorf("unexpected row: %+v", scores[0])
	}

	catchScores, err := store.TopScores("catch", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(catchScores) != 1 {
		t.Errorf("Expected 1 catch score, got %d", len(catchScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveAttempt("test", "p", (i+1)*100, 0, 0)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveAttempt("runner", "a", 100, 0, 0)
	store.SaveAttempt("runner", "a", 300, 0, 0)
	store.SaveAttempt("runner", "a", 200, 0, 0)

	high, err = store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveAttempt("runner", "a", 100, 0, 0)
	store.SaveAttempt("runner", "a", 200, 0, 0)
	store.SaveAttempt("catch", "a", 300, 0, 0)

	if err := store.ClearScores("runner"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	runnerScores, _ := store.TopScores("runner", 10)
	if len(runnerScores) != 0 {
		t.Errorf("Expected 0 runner scores after clear, got %d", len(runnerScores))
	}

	catchScores, _ := store.TopScores("catch", 10)
	if len(catchScores) != 1 {
		t.Errorf("Catch scores should not be affected by clearing runner")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveAttempt("memory", "a", 0, 14, 40)
	store.SaveAttempt("memory", "b", 0, 11, 55)
	store.SaveAttempt("memory", "c", 0, 0, 3) // abandoned round

	stats, err := store.GetGameStats("memory")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.BestMoves != 11 {
		t.Errorf("BestMoves = %d, expected 11", stats.BestMoves)
	}

	empty, err := store.GetGameStats("putting")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestMemoryKV(t *testing.T) {
	m := NewMemory()
	m.Set("k", "v")
	if v, ok, _ := m.Get("k"); !ok || v != "v" {
		t.Errorf("Get() = (%q, %v), expected (v, true)", v, ok)
	}
	m.Delete("k")
	if _, ok, _ := m.Get("k"); ok {
		t.Error("key should be gone after Delete()")
	}
}
