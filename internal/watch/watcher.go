package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config holds watch loop configuration.
type Config struct {
	Path     string        // file to watch
	Debounce time.Duration // delay between the last event and the rescan
	OnChange func() error  // invoked once per settled burst of events
}

// Run calls cfg.OnChange each time the watched file is written or replaced,
// until ctx is cancelled. Calls never overlap.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Path == "" {
		return fmt.Errorf("watch path is required")
	}
	if cfg.OnChange == nil {
		return fmt.Errorf("change handler is required")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace files by rename, which drops a watch on the file
	// itself, so the parent directory is watched instead.
	dir := filepath.Dir(cfg.Path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch dir: %w", err)
	}
	base := filepath.Base(cfg.Path)

	slog.Info("watching for changes", "file", cfg.Path, "debounce", cfg.Debounce)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Info("watch stopped", "file", cfg.Path)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(cfg.Debounce)
			} else {
				timer.Reset(cfg.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := cfg.OnChange(); err != nil {
				slog.Warn("rescan failed", "file", cfg.Path, "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher error", "error", err)
		}
	}
}
