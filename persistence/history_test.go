package persistence

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestHistory(t *testing.T) *HistoryStore {
	t.Helper()
	store, err := OpenHistory(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHistoryTouchAndRecent(t *testing.T) {
	store := openTestHistory(t)
	ctx := context.Background()

	if err := store.Touch(ctx, "/src/a.go", "go"); err != nil {
		t.Fatalf("touch a: %v", err)
	}
	if err := store.Touch(ctx, "/src/b.py", "python"); err != nil {
		t.Fatalf("touch b: %v", err)
	}
	if err := store.Touch(ctx, "/src/a.go", "go"); err != nil {
		t.Fatalf("touch a again: %v", err)
	}

	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].Path != "/src/a.go" {
		t.Fatalf("expected a.go first, got %s", recent[0].Path)
	}
	if recent[0].OpenCount != 2 {
		t.Fatalf("expected open count 2, got %d", recent[0].OpenCount)
	}
	if recent[1].Language != "python" {
		t.Fatalf("expected python, got %s", recent[1].Language)
	}
}

func TestHistoryRecentLimit(t *testing.T) {
	store := openTestHistory(t)
	ctx := context.Background()

	for _, path := range []string{"/a", "/b", "/c"} {
		if err := store.Touch(ctx, path, ""); err != nil {
			t.Fatalf("touch %s: %v", path, err)
		}
	}
	recent, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
}

func TestHistoryForget(t *testing.T) {
	store := openTestHistory(t)
	ctx := context.Background()

	if err := store.Touch(ctx, "/src/a.go", "go"); err != nil {
		t.Fatalf("touch: %v", err)
	}
	if err := store.Forget(ctx, "/src/a.go"); err != nil {
		t.Fatalf("forget: %v", err)
	}
	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(recent))
	}
}

func TestHistoryTouchRequiresPath(t *testing.T) {
	store := openTestHistory(t)
	if err := store.Touch(context.Background(), "", "go"); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
