package directory

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Reloader is the part of the store the watcher drives.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Watcher nudges the store when the snapshot file changes on disk, so new
// records become visible without waiting for the next versioned lookup.
// It watches the parent directory rather than the file itself: editors and
// deploy tooling typically replace snapshot files by rename.
type Watcher struct {
	store  Reloader
	path   string
	logger *slog.Logger
}

// NewWatcher constructs a watcher for the snapshot file at path.
func NewWatcher(store Reloader, path string, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		store:  store,
		path:   filepath.Clean(path),
		logger: logger,
	}
}

// Run watches until the context is cancelled. It returns the construction
// error if the underlying notifier cannot be created; change-handling errors
// are logged, not returned, because a broken watcher must not take down the
// lookup path (versioned reloads still work without it).
func (w *Watcher) Run(ctx context.Context) error {
	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer notifier.Close()

	dir := filepath.Dir(w.path)
	if err := notifier.Add(dir); err != nil {
		return err
	}

	w.logger.Info("watching snapshot for changes", "path", w.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-notifier.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Info("snapshot change detected", "op", event.Op.String())
			if err := w.store.Reload(ctx); err != nil {
				w.logger.Warn("reload after snapshot change failed", "error", err)
			}
		case err, ok := <-notifier.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("snapshot watcher error", "error", err)
		}
	}
}
