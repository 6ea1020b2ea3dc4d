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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{4, 2, 6} {
		if _, err := store.SaveScore("colors", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("colors_easy", 3); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("colors", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{6, 4, 2}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}

	easy, err := store.TopScores("colors_easy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(easy) != 1 {
		t.Errorf("Expected 1 easy score, got %d", len(easy))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("colors", i+1)
	}

	scores, err := store.TopScores("colors", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("colors", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("TopScores(0) returned %d scores, expected 5", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("colors")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("colors", 1)
	store.SaveScore("colors", 6)
	store.SaveScore("colors", 3)

	high, err = store.HighScore("colors")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 6 {
		t.Errorf("Expected high score of 6, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("colors", 1)
	store.SaveRound(RoundRecord{GameID: "colors", Difficulty: "hard", Picked: "rgb(1, 2, 3)", Points: 6})
	store.SaveScore("colors_easy", 3)

	if err := store.ClearScores("colors"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("colors", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	rounds, _ := store.RecentRounds("colors", 10)
	if len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}

	easy, _ := store.TopScores("colors_easy", 10)
	if len(easy) != 1 {
		t.Error("Easy scores should not be affected by clearing hard")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("colors", i%6+1)
	}

	scores, err := store.AllScores("colors")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreSaveRound(t *testing.T) {
	store := openTestStore(t)

	records := []RoundRecord{
		{GameID: "colors", Difficulty: "hard", Picked: "rgb(10, 20, 30)", Misses: 2, Points: 4, Source: "tui"},
		{GameID: "colors", Difficulty: "hard", Picked: "rgb(40, 50, 60)", Misses: 0, Points: 6, Source: "http"},
	}
	for _, r := range records {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.RecentRounds("colors", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(rounds))
	}

	// Newest first
	got := rounds[0]
	if got.Picked != "rgb(40, 50, 60)" || got.Points != 6 || got.Source != "http" {
		t.Errorf("RecentRounds()[0] = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	// Each round also lands on the scoreboard
	high, _ := store.HighScore("colors")
	if high != 6 {
		t.Errorf("HighScore() = %d after SaveRound, expected 6", high)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("colors")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRound(RoundRecord{GameID: "colors", Difficulty: "hard", Picked: "rgb(0, 0, 0)", Misses: 1, Points: 5})
	store.SaveRound(RoundRecord{GameID: "colors", Difficulty: "hard", Picked: "rgb(0, 0, 0)", Misses: 3, Points: 3})

	stats, err := store.GetGameStats("colors")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 5 || stats.TotalScore != 8 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 4 || stats.AvgMisses != 2 {
		t.Errorf("averages = %v/%v, expected 4/2", stats.AvgScore, stats.AvgMisses)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
