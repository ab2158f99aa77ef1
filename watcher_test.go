package slideview

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigWatcherReloads(t *testing.T) {

	dir := t.TempDir()
	path := filepath.Join(dir, "viewer.yaml")

	if err := os.WriteFile(path, []byte("transition: {duration_ms: 1000}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("transition: {duration_ms: 5}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("transition: {duration_ms: 250}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Configs:
		if cfg.TransitionDuration() != 250*time.Millisecond {
			t.Fatalf("reloaded duration = %s, want 250ms", cfg.TransitionDuration())
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the reloaded config")
	}

}

func TestConfigWatcherReportsInvalidConfig(t *testing.T) {

	dir := t.TempDir()
	path := filepath.Join(dir, "viewer.yml")

	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("model: {target_size: -3}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Configs:
		t.Fatalf("invalid config was delivered: %+v", cfg)
	case err := <-w.Errors:
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("err = %v, want ErrInvalidConfig", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the config error")
	}

}

func TestConfigWatcherClose(t *testing.T) {

	path := filepath.Join(t.TempDir(), "viewer.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	// Closing twice is safe, and both channels end up closed.
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	if _, ok := <-w.Configs; ok {
		t.Error("Configs channel still open after Close()")
	}

	if _, ok := <-w.Errors; ok {
		t.Error("Errors channel still open after Close()")
	}

}

func TestIsConfigFile(t *testing.T) {
	for path, want := range map[string]bool{
		"a.yaml":     true,
		"b.YML":      true,
		"c.json":     false,
		"viewer":     false,
		"d.yaml.swp": false,
	} {
		if got := isConfigFile(path); got != want {
			t.Errorf("isConfigFile(%q) = %v, want %v", path, got, want)
		}
	}
}
