package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"slate/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRequiresDirAndHandler(t *testing.T) {
	cfgVal := config.Default()
	if _, err := New(&cfgVal, testLogger(), func(context.Context, string) {}); err == nil {
		t.Fatal("expected error for unset watch dir")
	}
	cfgVal.Watch.Dir = t.TempDir()
	if _, err := New(&cfgVal, testLogger(), nil); err == nil {
		t.Fatal("expected error for nil handler")
	}
}

func TestNewRejectsBadPattern(t *testing.T) {
	cfgVal := config.Default()
	cfgVal.Watch.Dir = t.TempDir()
	cfgVal.Watch.Patterns = []string{"[unterminated"}
	if _, err := New(&cfgVal, testLogger(), func(context.Context, string) {}); err == nil {
		t.Fatal("expected error for invalid glob")
	}
}

func TestMatches(t *testing.T) {
	cfgVal := config.Default()
	cfgVal.Watch.Dir = t.TempDir()
	cfgVal.Watch.Patterns = []string{"*.mov", "*.mp4"}
	w, err := New(&cfgVal, testLogger(), func(context.Context, string) {})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := map[string]bool{
		"edit.mov":    true,
		"edit.mp4":    true,
		"edit.MOV":    false,
		"notes.txt":   false,
		"shot.0042.exr": false,
	}
	for name, want := range cases {
		if got := w.matches(name); got != want {
			t.Errorf("matches(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestWaitForSettle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grow.mov")
	if err := os.WriteFile(path, []byte("partial"), 0o644); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		done <- waitForSettle(context.Background(), path, 20*time.Millisecond)
	}()

	// Keep growing briefly, then stop and let the size hold.
	for i := 0; i < 3; i++ {
		time.Sleep(10 * time.Millisecond)
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.WriteString("more"); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("waitForSettle: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("waitForSettle did not return")
	}
}

func TestWaitForSettleMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never-existed.mov")
	if err := waitForSettle(context.Background(), path, 10*time.Millisecond); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRunHandlesDroppedFile(t *testing.T) {
	dir := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Watch.Dir = dir
	cfgVal.Watch.Patterns = []string{"*.mov"}
	cfgVal.Watch.SettleSeconds = 1 // floor; settle check uses seconds

	var mu sync.Mutex
	var handled []string
	w, err := New(&cfgVal, testLogger(), func(_ context.Context, path string) {
		mu.Lock()
		handled = append(handled, path)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.settle = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runDone := make(chan error, 1)
	go func() { runDone <- w.Run(ctx) }()

	// Give the watcher a moment to register before dropping the file.
	time.Sleep(100 * time.Millisecond)
	target := filepath.Join(dir, "incoming.mov")
	if err := os.WriteFile(target, []byte("media"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		mu.Lock()
		n := len(handled)
		mu.Unlock()
		if n > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("handler never invoked")
		case <-time.After(20 * time.Millisecond):
		}
	}

	mu.Lock()
	got := handled[0]
	mu.Unlock()
	if got != target {
		t.Fatalf("handled %q, want %q", got, target)
	}

	cancel()
	if err := <-runDone; err != context.Canceled {
		t.Fatalf("Run returned %v", err)
	}
}
