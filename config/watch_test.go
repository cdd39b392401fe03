package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pixeltiles.yaml")
	if err := os.WriteFile(path, []byte("grid_color: \"#dddddd\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	// Writes to other files in the directory are not reported.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatalf("write other: %v", err)
	}
	if err := os.WriteFile(path, []byte("grid_color: \"#ff0000\"\nlabel_size: 20\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case got := <-w.Events:
		abs, _ := filepath.Abs(path)
		if got != abs {
			t.Fatalf("expected event for %s, got %s", abs, got)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("no event after rewriting the config")
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg.GridColor != "#ff0000" || cfg.LabelSize != 20 {
		t.Fatalf("reload did not pick up new settings: %+v", cfg)
	}
}

func TestWatchMissingDir(t *testing.T) {
	if _, err := Watch(filepath.Join(t.TempDir(), "nope", "pixeltiles.yaml")); err == nil {
		t.Fatalf("expected error watching a missing directory")
	}
}

func TestWatchCloseTwice(t *testing.T) {
	w, err := Watch(filepath.Join(t.TempDir(), "pixeltiles.yaml"))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
