package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/scores"
)

var (
	classic = config.GameSettings{BoardSize: 4, FourTilePercent: 25}
	big     = config.GameSettings{BoardSize: 6, FourTilePercent: 25}
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

func save(t *testing.T, store *Store, score int, s config.GameSettings) {
	t.Helper()
	if _, err := store.SaveScore(scores.Record{Value: score, Settings: s, RecordedAt: time.Now()}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreScoresBySettings(t *testing.T) {
	store := openTestStore(t)

	save(t, store, 1000, classic)
	save(t, store, 600, classic)
	save(t, store, 2400, classic)
	save(t, store, 5000, big)

	entries, err := store.ScoresBySettings(classic.ID(), 10)
	if err != nil {
		t.Fatalf("ScoresBySettings() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(entries))
	}
	if entries[0].Score != 2400 || entries[1].Score != 1000 || entries[2].Score != 600 {
		t.Errorf("Scores not in expected order: %v", entries)
	}
	if entries[0].Settings != classic || entries[0].SettingsID != "4x4-25" {
		t.Errorf("Settings = %+v (%s)", entries[0].Settings, entries[0].SettingsID)
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	limited, err := store.ScoresBySettings(classic.ID(), 2)
	if err != nil {
		t.Fatalf("ScoresBySettings() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 scores with limit, got %d", len(limited))
	}

	top, err := store.TopScores(1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 1 || top[0].Score != 5000 || top[0].Settings != big {
		t.Errorf("TopScores(1) = %+v", top)
	}
}

func TestStoreSaveScoreRejectsInvalidSettings(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore(scores.Record{Value: 100, Settings: config.GameSettings{BoardSize: 1}})
	if err == nil {
		t.Error("SaveScore with invalid settings should fail")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(classic.ID())
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no scores, got %d", high)
	}

	save(t, store, 1000, classic)
	save(t, store, 3000, classic)
	save(t, store, 9000, big)

	high, err = store.HighScore(classic.ID())
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 3000 {
		t.Errorf("Expected high score of 3000, got %d", high)
	}
}

func TestStoreSettingsSummaries(t *testing.T) {
	store := openTestStore(t)

	save(t, store, 800, big)
	save(t, store, 1000, classic)
	save(t, store, 3000, classic)

	sums, err := store.SettingsSummaries()
	if err != nil {
		t.Fatalf("SettingsSummaries() failed: %v", err)
	}
	if len(sums) != 2 {
		t.Fatalf("Expected 2 summaries, got %d", len(sums))
	}

	// Most played first.
	first := sums[0]
	if first.SettingsID != classic.ID() || first.Count != 2 || first.Best != 3000 {
		t.Errorf("first summary = %+v", first)
	}
	if first.Settings != classic {
		t.Errorf("first summary settings = %+v", first.Settings)
	}
	if first.AvgScore != 2000 {
		t.Errorf("AvgScore = %v, want 2000", first.AvgScore)
	}
	if sums[1].SettingsID != big.ID() || sums[1].Count != 1 {
		t.Errorf("second summary = %+v", sums[1])
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, 1000, classic)
	save(t, store, 2000, big)

	if err := store.ClearScores(classic.ID()); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classicScores, _ := store.ScoresBySettings(classic.ID(), 10)
	if len(classicScores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(classicScores))
	}
	bigScores, _ := store.ScoresBySettings(big.ID(), 10)
	if len(bigScores) != 1 {
		t.Error("Other settings should not be affected by clearing")
	}
}

func TestStoreSavedGames(t *testing.T) {
	store := openTestStore(t)

	_, found, err := store.LoadGame("2048")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if found {
		t.Fatal("LoadGame() found a game in an empty database")
	}

	first := t2048.GameState{Board: t2048.Board{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 8, 0},
		{0, 0, 0, 16},
	}, Score: 48}
	if err := store.SaveGame("2048", first, classic); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	second := first.Clone()
	second.Board[0][0] = 32
	second.Score = 120
	if err := store.SaveGame("2048", second, classic); err != nil {
		t.Fatalf("SaveGame() overwrite failed: %v", err)
	}

	got, found, err := store.LoadGame("2048")
	if err != nil || !found {
		t.Fatalf("LoadGame() = %v, %v", found, err)
	}
	if !got.Equal(second) {
		t.Errorf("LoadGame() = %+v, want %+v", got, second)
	}

	if err := store.DeleteGame("2048"); err != nil {
		t.Fatalf("DeleteGame() failed: %v", err)
	}
	if _, found, _ := store.LoadGame("2048"); found {
		t.Error("game still present after DeleteGame()")
	}
	if err := store.DeleteGame("2048"); err != nil {
		t.Errorf("deleting a missing game should not fail: %v", err)
	}
}

func TestStoreLoadCorruptGame(t *testing.T) {
	store := openTestStore(t)

	_, err := store.db.Exec(
		"INSERT INTO saved_games (game_id, state_json, settings_id) VALUES (?, ?, ?)",
		"2048", `{"board":[[2,0],[0]],"score":4}`, "2x2-25",
	)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if _, _, err := store.LoadGame("2048"); err == nil {
		t.Error("LoadGame() should reject a ragged board")
	}
}
