package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/rebrand-tracker/internal/logger"
)

// Watcher reloads a ConfigStore whenever its file is written or replaced.
// The directory is watched rather than the file so that editors which save
// via rename are still picked up.
type Watcher struct {
	store    *ConfigStore
	onChange func()
	fsw      *fsnotify.Watcher
}

// NewWatcher starts watching the directory holding store's file.
// onChange runs after every successful reload.
func NewWatcher(store *ConfigStore, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(store.Path())); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(store.Path()), err)
	}
	return &Watcher{store: store, onChange: onChange, fsw: fsw}, nil
}

// Run processes events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher: %v", err)
		}
	}
}

// handleEvent reloads the store for writes and creates of the config file.
// It reports whether a reload succeeded. A file that fails to parse leaves
// the previous configuration in place.
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != ConfigFileName {
		return false
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}

	if err := w.store.Load(); err != nil {
		logger.Warn("config reload failed: %v", err)
		return false
	}
	logger.Debug("config reloaded from %s", event.Name)
	if w.onChange != nil {
		w.onChange()
	}
	return true
}
