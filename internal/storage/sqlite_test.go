package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

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

func TestStoreRecordAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Record some sessions
	if _, err := store.RecordSession("drifter", 1200, 2, 45*time.Second); err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}
	if _, err := store.RecordSession("drifter", 400, 1, 12*time.Second); err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}
	if _, err := store.RecordSession("drifter", 4000, 4, 180*time.Second); err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}

	sessions, err := store.TopSessions("drifter", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}

	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(sessions))
	}

	// Should be sorted by score descending
	if sessions[0].Score != 4000 {
		t.Errorf("Expected highest score to be 4000, got %d", sessions[0].Score)
	}
	if sessions[1].Score != 1200 {
		t.Errorf("Expected second score to be 1200, got %d", sessions[1].Score)
	}
	if sessions[2].Score != 400 {
		t.Errorf("Expected third score to be 400, got %d", sessions[2].Score)
	}

	if sessions[0].LevelReached != 4 {
		t.Errorf("Expected level reached 4, got %d", sessions[0].LevelReached)
	}
	if sessions[0].Duration != 180*time.Second {
		t.Errorf("Expected duration 180s, got %v", sessions[0].Duration)
	}
}

func TestStoreTopSessionsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.RecordSession("drifter", (i+1)*100, 1, time.Second)
	}

	sessions, err := store.TopSessions("drifter", 3)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}

	if len(sessions) != 3 {
		t.Errorf("Expected 3 sessions with limit, got %d", len(sessions))
	}

	if sessions[0].Score != 500 || sessions[1].Score != 400 || sessions[2].Score != 300 {
		t.Errorf("Sessions not in expected order: %v", sessions)
	}
}

func TestStoreBestScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty store should return 0
	best, err := store.BestScore("drifter")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty store, got %d", best)
	}

	store.RecordSession("drifter", 900, 1, time.Second)
	store.RecordSession("drifter", 2400, 3, time.Second)

	best, err = store.BestScore("drifter")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 2400 {
		t.Errorf("Expected best score 2400, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty stats
	stats, err := store.Stats("drifter")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesPlayed != 0 || stats.BestScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.RecordSession("drifter", 1000, 2, 30*time.Second)
	store.RecordSession("drifter", 3500, 4, 90*time.Second)
	store.RecordSession("drifter", 200, 1, 10*time.Second)

	// Different game should not pollute drifter stats
	store.RecordSession("other", 99999, 9, time.Hour)

	stats, err = store.Stats("drifter")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.GamesPlayed != 3 {
		t.Errorf("Expected 3 games played, got %d", stats.GamesPlayed)
	}
	if stats.BestScore != 3500 {
		t.Errorf("Expected best score 3500, got %d", stats.BestScore)
	}
	if stats.HighestLevel != 4 {
		t.Errorf("Expected highest level 4, got %d", stats.HighestLevel)
	}
	if stats.TotalPlay != 130*time.Second {
		t.Errorf("Expected total play 130s, got %v", stats.TotalPlay)
	}
}

func TestStoreClearSessions(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.RecordSession("drifter", 500, 1, time.Second)
	store.RecordSession("keep", 700, 1, time.Second)

	if err := store.ClearSessions("drifter"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	sessions, err := store.TopSessions("drifter", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(sessions))
	}

	kept, err := store.TopSessions("keep", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("Expected other game's sessions to survive, got %d", len(kept))
	}
}
