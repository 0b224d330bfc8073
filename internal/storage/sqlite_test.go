package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/pixel-riders/internal/core"
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

	// Check that the file was created
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
	store.SaveScore("riders", 750)
	store.SetInt("HighScore:riders", 750)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("riders"); high != 750 {
		t.Errorf("HighScore() after reopen = %d, expected 750", high)
	}
	if v, ok, _ := store.GetInt("HighScore:riders"); !ok || v != 750 {
		t.Errorf("GetInt() after reopen = %d, %v", v, ok)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("riders", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different mode
	if _, err := store.SaveScore("riders_zen", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("riders", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}

	zenScores, err := store.TopScores("riders_zen", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(zenScores) != 1 {
		t.Errorf("Expected 1 zen score, got %d", len(zenScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("riders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("riders", 100)
	store.SaveScore("riders", 300)
	store.SaveScore("riders", 200)

	high, err = store.HighScore("riders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("riders", 100)
	store.SaveScore("riders", 200)
	store.SaveScore("riders_zen", 300)
	store.SetInt("HighScore:riders", 200)
	store.RecordJump(core.JumpRecord{RideID: "a", Mode: "riders", Outcome: "committed", Quality: "clean", Points: 100})

	// Clear only the standard mode
	if err := store.ClearScores("riders"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("riders", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if jumps, _ := store.RecentJumps("riders", 10); len(jumps) != 0 {
		t.Errorf("Expected 0 jumps after clear, got %d", len(jumps))
	}
	if _, ok, _ := store.GetInt("HighScore:riders"); ok {
		t.Error("stored high score should be cleared")
	}

	// Zen should still have scores
	if zen, _ := store.TopScores("riders_zen", 10); len(zen) != 1 {
		t.Errorf("Zen scores should not be affected by clearing riders")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreKeyValue(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.GetInt("missing"); err != nil || ok {
		t.Errorf("GetInt(missing) = ok %v, err %v; expected unset", ok, err)
	}

	if err := store.SetInt("HighScore:riders", 400); err != nil {
		t.Fatalf("SetInt() failed: %v", err)
	}
	if err := store.SetInt("HighScore:riders", 650); err != nil {
		t.Fatalf("SetInt() overwrite failed: %v", err)
	}

	v, ok, err := store.GetInt("HighScore:riders")
	if err != nil || !ok || v != 650 {
		t.Errorf("GetInt() = %d, %v, %v; expected 650", v, ok, err)
	}
}

func TestStoreJumpLog(t *testing.T) {
	store := openTestStore(t)

	records := []core.JumpRecord{
		{RideID: "r1", Mode: "riders", Outcome: "committed", Quality: "perfect", Flips: 1, AirtimeMS: 1500, Points: 525},
		{RideID: "r1", Mode: "riders", Outcome: "committed", Quality: "rough", AirtimeMS: 300},
		{RideID: "r1", Mode: "riders", Outcome: "discarded", Reason: "crash", Quality: "clean", Flips: 2, AirtimeMS: 2100},
		{RideID: "r2", Mode: "riders_zen", Outcome: "committed", Quality: "clean", Points: 100},
	}
	for _, r := range records {
		if err := store.RecordJump(r); err != nil {
			t.Fatalf("RecordJump() failed: %v", err)
		}
	}

	jumps, err := store.RecentJumps("riders", 2)
	if err != nil {
		t.Fatalf("RecentJumps() failed: %v", err)
	}
	if len(jumps) != 2 {
		t.Fatalf("Expected 2 jumps with limit, got %d", len(jumps))
	}
	if jumps[0].JumpRecord != records[2] {
		t.Errorf("newest jump = %+v, expected %+v", jumps[0].JumpRecord, records[2])
	}

	stats, err := store.GetJumpStats("riders")
	if err != nil {
		t.Fatalf("GetJumpStats() failed: %v", err)
	}
	want := JumpStats{
		Mode:           "riders",
		Jumps:          3,
		Committed:      2,
		Perfect:        1,
		Crashes:        1,
		TotalFlips:     3,
		BestJump:       525,
		LongestAirtime: 2100 * time.Millisecond,
	}
	if *stats != want {
		t.Errorf("GetJumpStats() = %+v, expected %+v", *stats, want)
	}

	empty, err := store.GetJumpStats("nobody")
	if err != nil {
		t.Fatalf("GetJumpStats() on empty mode failed: %v", err)
	}
	if empty.Jumps != 0 || empty.BestJump != 0 {
		t.Errorf("empty stats = %+v", *empty)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("riders", 100)
	store.SaveScore("riders", 300)
	store.SaveScore("riders_zen", 50)

	stats, err := store.GetGameStats("riders")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.AvgScore != 200 {
		t.Errorf("GetGameStats() = %+v", *stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["riders_zen"].HighScore != 50 {
		t.Errorf("GetAllGamesStats() = %v", all)
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
