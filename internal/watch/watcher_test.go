package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReportsTrackedFileWrites(t *testing.T) {
	dir := t.TempDir()
	tracked := filepath.Join(dir, "chart.yaml")
	if err := os.WriteFile(tracked, []byte("bodies: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(tracked)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(tracked, []byte("bodies:\n  - label: Sun\n    longitude: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-w.Changes:
		if filepath.Base(change.File) != "chart.yaml" {
			t.Errorf("change.File = %q, want chart.yaml", change.File)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcher_IgnoresUntrackedFiles(t *testing.T) {
	dir := t.TempDir()
	tracked := filepath.Join(dir, "chart.yaml")
	if err := os.WriteFile(tracked, []byte("bodies: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(tracked)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(other, []byte("scratch"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-w.Changes:
		t.Errorf("unexpected change event for untracked file: %+v", change)
	case <-time.After(400 * time.Millisecond):
		// No event: correct.
	}
}
