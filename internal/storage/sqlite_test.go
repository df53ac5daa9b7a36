package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Store {
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.sudokugfx/history.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".sudokugfx", "history.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTemp(t)

	renders := []Render{
		{Scene: "classic", Output: "a.png", Format: "png", Width: 608, Height: 608, Templates: 1, Items: 20, Duration: 120 * time.Millisecond},
		{Scene: "twins", Output: "b.png", Format: "png", Width: 752, Height: 752, Templates: 2, Items: 7, Duration: 300 * time.Millisecond},
		{Scene: "classic", Output: "c.jpg", Format: "jpeg", Width: 608, Height: 608, Templates: 1, Items: 20, Duration: 80 * time.Millisecond},
	}
	for _, r := range renders {
		if _, err := store.SaveRender(r); err != nil {
			t.Fatalf("SaveRender() failed: %v", err)
		}
	}

	recent, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 renders, got %d", len(recent))
	}
	// Newest first
	if recent[0].Output != "c.jpg" || recent[2].Output != "a.png" {
		t.Errorf("Unexpected order: %s, %s, %s", recent[0].Output, recent[1].Output, recent[2].Output)
	}
	if recent[1].Duration != 300*time.Millisecond || recent[1].Templates != 2 {
		t.Errorf("Round trip lost fields: %+v", recent[1])
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	limited, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent(2) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 renders, got %d", len(limited))
	}

	classic, err := store.ByScene("classic", 0)
	if err != nil {
		t.Fatalf("ByScene() failed: %v", err)
	}
	if len(classic) != 2 {
		t.Errorf("Expected 2 classic renders, got %d", len(classic))
	}
}

func TestStoreGet(t *testing.T) {
	store := openTemp(t)

	id, err := store.SaveRender(Render{Scene: "sujiken", Output: "s.png", Format: "png", Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("SaveRender() failed: %v", err)
	}
	r, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if r.Scene != "sujiken" || r.ID != id {
		t.Errorf("Get() = %+v", r)
	}

	if _, err := store.Get(id + 100); !IsNotFound(err) {
		t.Errorf("Get(missing) error = %v, expected not found", err)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTemp(t)

	for _, ms := range []int{100, 200, 300} {
		if _, err := store.SaveRender(Render{Scene: "classic", Output: "x.png", Format: "png", Duration: time.Duration(ms) * time.Millisecond}); err != nil {
			t.Fatalf("SaveRender() failed: %v", err)
		}
	}
	if _, err := store.SaveRender(Render{Scene: "jigsaw", Output: "j.png", Format: "png"}); err != nil {
		t.Fatalf("SaveRender() failed: %v", err)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 scenes, got %d", len(stats))
	}
	classic := stats["classic"]
	if classic.Renders != 3 {
		t.Errorf("Expected 3 classic renders, got %d", classic.Renders)
	}
	if classic.AvgDuration != 200*time.Millisecond {
		t.Errorf("Expected 200ms average, got %v", classic.AvgDuration)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTemp(t)

	for _, scene := range []string{"classic", "classic", "twins"} {
		if _, err := store.SaveRender(Render{Scene: scene, Output: "o.png", Format: "png"}); err != nil {
			t.Fatalf("SaveRender() failed: %v", err)
		}
	}

	if err := store.Clear("classic"); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	recent, _ := store.Recent(10)
	if len(recent) != 1 || recent[0].Scene != "twins" {
		t.Errorf("Expected only twins left, got %+v", recent)
	}

	if err := store.Clear(""); err != nil {
		t.Fatalf("Clear(all) failed: %v", err)
	}
	recent, _ = store.Recent(10)
	if len(recent) != 0 {
		t.Errorf("Expected empty history, got %d renders", len(recent))
	}
}
