// Package watcher reports changes to the task file.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/ecfg/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultDebounceWindow absorbs the several events editors emit per save.
const DefaultDebounceWindow = 100 * time.Millisecond

// Watcher calls back when one of the watched file names changes in a directory.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	names     map[string]bool
	logger    ports.Logger
}

// New creates a Watcher for the given file names. onChange receives the
// changed paths once per burst of events.
func New(logger ports.Logger, window time.Duration, names []string, onChange func(paths []string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}

	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}

	return &Watcher{
		fsWatcher: fsw,
		debouncer: NewDebouncer(window, onChange),
		names:     set,
		logger:    logger,
	}, nil
}

// Start watches dir until ctx is done or Stop is called. The directory is
// watched rather than the file so that editors replacing the file by rename
// are still seen.
func (w *Watcher) Start(ctx context.Context, dir string) error {
	if err := w.fsWatcher.Add(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch directory"), "dir", dir)
	}
	go w.processEvents(ctx)
	return nil
}

// Stop releases the watcher.
func (w *Watcher) Stop() error {
	w.debouncer.Stop()
	return w.fsWatcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.names[filepath.Base(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.logger.Debug("task file event " + event.String())
			w.debouncer.Add(event.Name)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(zerr.Wrap(err, "file watcher error"))
		}
	}
}
