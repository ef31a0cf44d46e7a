// Package watch notifies consumers when the task store changes on disk.
// Consumers react by re-fetching and rebuilding their views in full;
// there is no incremental patching, so repeated notifications converge
// to the same state.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the store file and emits a signal per change batch.
// The store writes via temp-file + rename, so changes surface as Create
// or Rename events on the watched directory.
type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan struct{}
	path   string
}

// New creates a watcher for the given store file path. The parent directory
// must exist.
func New(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory, not the file: the atomic rename replaces the
	// inode and a file watch would go stale after the first write.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch store directory: %w", err)
	}

	return &Watcher{
		fsw:    fsw,
		events: make(chan struct{}, 1),
		path:   filepath.Clean(path),
	}, nil
}

// Events returns the change signal channel. Signals are coalesced: a burst
// of writes may produce a single signal.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Run processes filesystem events until the context is cancelled.
// Should be run in a goroutine.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.events <- struct{}{}:
			default: // a signal is already pending
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
