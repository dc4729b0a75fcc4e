package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/emojidrop/internal/core"
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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("emojidrop", 40); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("emojidrop")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 40 {
		t.Errorf("Expected high score 40 after reopen, got %d", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.SaveRun("emojidrop", core.RunSummary{
		Score:       70,
		MostCleared: "Anger",
		Cleared:     map[string]int{"Anger": 6, "Fear": 3, "Disgust": 0},
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(runID); err != nil {
		t.Errorf("run ID %q is not a UUID: %v", runID, err)
	}

	scores, err := store.TopScores("emojidrop", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	e := scores[0]
	if e.RunID != runID || e.Score != 70 || e.MostCleared != "Anger" || e.ClearedTotal != 9 {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	clears, err := store.RunClears(runID)
	if err != nil {
		t.Fatalf("RunClears() failed: %v", err)
	}
	if len(clears) != 2 || clears["Anger"] != 6 || clears["Fear"] != 3 {
		t.Errorf("unexpected clears: %v", clears)
	}
}

func TestStoreTopScoresOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveScore("emojidrop", (i+1)*100); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("other", 900)

	scores, err := store.TopScores("emojidrop", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("emojidrop")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("emojidrop", 100)
	store.SaveScore("emojidrop", 300)
	store.SaveScore("emojidrop", 200)

	high, err = store.HighScore("emojidrop")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSymbolTotals(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("emojidrop", core.RunSummary{Score: 10, Cleared: map[string]int{"Happiness": 3}})
	store.SaveRun("emojidrop", core.RunSummary{Score: 30, Cleared: map[string]int{"Happiness": 3, "Sadness": 3}})
	store.SaveRun("other", core.RunSummary{Score: 10, Cleared: map[string]int{"Happiness": 99}})

	totals, err := store.SymbolTotals("emojidrop")
	if err != nil {
		t.Fatalf("SymbolTotals() failed: %v", err)
	}

	if totals["Happiness"] != 6 || totals["Sadness"] != 3 || len(totals) != 2 {
		t.Errorf("unexpected totals: %v", totals)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	keep, _ := store.SaveRun("other", core.RunSummary{Score: 300, Cleared: map[string]int{"Fear": 3}})
	drop, _ := store.SaveRun("emojidrop", core.RunSummary{Score: 100, Cleared: map[string]int{"Fear": 3}})
	store.SaveScore("emojidrop", 200)

	if err := store.ClearScores("emojidrop"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("emojidrop", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if clears, _ := store.RunClears(drop); len(clears) != 0 {
		t.Errorf("tallies of cleared runs should be deleted, got %v", clears)
	}
	if clears, _ := store.RunClears(keep); clears["Fear"] != 3 {
		t.Error("other games should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("emojidrop")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	store.SaveRun("emojidrop", core.RunSummary{Score: 10, Cleared: map[string]int{"Anger": 3}})
	store.SaveRun("emojidrop", core.RunSummary{Score: 30, Cleared: map[string]int{"Anger": 3, "Fear": 4}})

	stats, err := store.GetGameStats("emojidrop")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 || stats.TotalCleared != 10 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
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
