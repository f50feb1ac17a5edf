package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func writeTree(t *testing.T, dir string) {
	t.Helper()
	for name, file := range testTree() {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, file.Data, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestStaticStoreReturnsSnapshot(t *testing.T) {
	t.Parallel()

	p, err := Load(testTree())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := NewStaticStore(p).Portfolio(); got != p {
		t.Fatal("expected the wrapped snapshot")
	}
}

func TestWatchedStoreReloadKeepsPreviousOnFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir)
	store, err := NewWatchedStore(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewWatchedStore() error = %v", err)
	}
	before := store.Portfolio()

	if err := os.WriteFile(filepath.Join(dir, SiteFile), []byte("personal: ["), 0o644); err != nil {
		t.Fatalf("write site: %v", err)
	}
	if err := store.Reload(); err == nil {
		t.Fatal("expected reload error")
	}
	if store.Portfolio() != before {
		t.Fatal("failed reload replaced the snapshot")
	}
	if store.Reloads() != 0 {
		t.Fatalf("Reloads() = %d, want 0", store.Reloads())
	}
}

func TestWatchedStoreRequiresValidInitialContent(t *testing.T) {
	t.Parallel()

	if _, err := NewWatchedStore(t.TempDir(), nil); err == nil {
		t.Fatal("expected error for empty content dir")
	}
}

func TestWatchedStorePicksUpChanges(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir)
	store, err := NewWatchedStore(dir, zap.NewNop(), WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatchedStore() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx) }()
	defer func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	}()

	// Give the watcher time to register before writing.
	time.Sleep(50 * time.Millisecond)
	added := filepath.Join(dir, ProjectsDir, "z-added.md")
	if err := os.WriteFile(added, []byte(projectFile("added", 5, "Added.\n")), 0o644); err != nil {
		t.Fatalf("write project: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := store.Portfolio().FindProjectBySlug("added"); ok {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("watched store did not pick up new project")
}
