package storage

import (
	"errors"
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

func sampleSession(variant string, score int) Session {
	return Session{
		Variant:      variant,
		Seed:         42,
		Width:        24,
		Height:       24,
		StartDir:     "up",
		FoodAttempts: 64,
		Inputs:       ".R.DQ",
		Score:        score,
		Ticks:        4,
		EndReason:    "quit",
	}
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := sampleSession("snake", 3)
	id, err := store.SaveSession(want)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	got, err := store.Session(id)
	if err != nil {
		t.Fatalf("Session() failed: %v", err)
	}

	want.ID = id
	got.CreatedAt = want.CreatedAt
	if got != want {
		t.Errorf("Session() = %+v, expected %+v", got, want)
	}
}

func TestStoreSessionNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Session(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Session() error = %v, expected ErrNotFound", err)
	}
	if err := store.DeleteSession(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteSession() error = %v, expected ErrNotFound", err)
	}
}

func TestStoreRecentSessions(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveSession(sampleSession("snake", i)); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}
	if _, err := store.SaveSession(sampleSession("snake_strict", 100)); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	all, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("Expected 6 sessions, got %d", len(all))
	}
	if all[0].Variant != "snake_strict" {
		t.Errorf("newest session variant = %q, expected snake_strict", all[0].Variant)
	}

	classic, err := store.RecentSessions("snake", 3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(classic) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(classic))
	}
	for i, expected := range []int{4, 3, 2} {
		if classic[i].Score != expected {
			t.Errorf("classic[%d].Score = %d, expected %d", i, classic[i].Score, expected)
		}
	}
}

func TestStoreDeleteSession(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveSession(sampleSession("snake", 1))
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if err := store.DeleteSession(id); err != nil {
		t.Fatalf("DeleteSession() failed: %v", err)
	}
	if _, err := store.Session(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Session() after delete = %v, expected ErrNotFound", err)
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveSession(sampleSession("snake", 7))
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	sess, err := store.Session(id)
	if err != nil {
		t.Fatalf("Session() failed: %v", err)
	}
	if sess.Score != 7 || sess.Inputs != ".R.DQ" {
		t.Errorf("Session() = %+v", sess)
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

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.snake/journal.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".snake", "journal.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
