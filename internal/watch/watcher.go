package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"slate/internal/config"
	"slate/internal/logging"
)

// Handler receives files that have settled in the drop directory.
type Handler func(ctx context.Context, path string)

// Watcher reacts to new files in a drop directory, filtered by glob
// patterns, and hands settled files to a Handler.
type Watcher struct {
	dir      string
	patterns []glob.Glob
	settle   time.Duration
	logger   *slog.Logger
	handler  Handler

	mu       sync.Mutex
	inflight map[string]struct{}
}

// New builds a Watcher from configuration. The watch directory must be set
// and the patterns must compile.
func New(cfg *config.Config, logger *slog.Logger, handler Handler) (*Watcher, error) {
	dir := strings.TrimSpace(cfg.Watch.Dir)
	if dir == "" {
		return nil, errors.New("watch.dir is not configured")
	}
	if handler == nil {
		return nil, errors.New("handler required")
	}

	patterns := make([]glob.Glob, 0, len(cfg.Watch.Patterns))
	for _, pattern := range cfg.Watch.Patterns {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("watch pattern %q: %w", pattern, err)
		}
		patterns = append(patterns, compiled)
	}

	return &Watcher{
		dir:      dir,
		patterns: patterns,
		settle:   time.Duration(cfg.Watch.SettleSeconds) * time.Second,
		logger:   logger,
		handler:  handler,
		inflight: make(map[string]struct{}),
	}, nil
}

// Run watches the drop directory until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer notifier.Close()

	if err := notifier.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info("watching drop folder", logging.String("dir", w.dir))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-notifier.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !w.matches(filepath.Base(event.Name)) {
				continue
			}
			w.dispatch(ctx, event.Name)
		case err, ok := <-notifier.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", logging.Error(err))
		}
	}
}

func (w *Watcher) matches(name string) bool {
	for _, pattern := range w.patterns {
		if pattern.Match(name) {
			return true
		}
	}
	return false
}

// dispatch settles and handles a path once, no matter how many events it
// produced while being copied in.
func (w *Watcher) dispatch(ctx context.Context, path string) {
	w.mu.Lock()
	if _, busy := w.inflight[path]; busy {
		w.mu.Unlock()
		return
	}
	w.inflight[path] = struct{}{}
	w.mu.Unlock()

	go func() {
		defer func() {
			w.mu.Lock()
			delete(w.inflight, path)
			w.mu.Unlock()
		}()

		if err := waitForSettle(ctx, path, w.settle); err != nil {
			if !errors.Is(err, context.Canceled) {
				w.logger.Warn("dropped file never settled",
					logging.String("path", path), logging.Error(err))
			}
			return
		}
		w.logger.Info("picked up dropped file", logging.String("path", path))
		w.handler(ctx, path)
	}()
}

// waitForSettle polls the file size until it holds steady for one settle
// interval, so half-copied files are not picked up.
func waitForSettle(ctx context.Context, path string, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second
	}

	var lastSize int64 = -1
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}
			if info.Size() == lastSize {
				return nil
			}
			lastSize = info.Size()
		}
	}
}
