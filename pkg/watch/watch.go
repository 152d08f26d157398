// Package watch reruns the comparison pipeline when either input transcript
// changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/fsnotify.v1"
)

// DefaultDebounce is how long the watcher waits after the last change event
// before regenerating, so editors that save in bursts trigger one rebuild.
const DefaultDebounce = 250 * time.Millisecond

// Watcher monitors transcript files and invokes a regenerate callback when
// any of them is written, created, or renamed.
type Watcher struct {
	paths      map[string]bool
	debounce   time.Duration
	regenerate func() error
}

// New creates a watcher over the given files. The regenerate callback runs
// on the watcher's goroutine; its errors are logged, not fatal, so a broken
// intermediate save does not end the watch.
func New(regenerate func() error, paths ...string) (*Watcher, error) {
	if regenerate == nil {
		return nil, fmt.Errorf("regenerate callback is nil")
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}

	watched := make(map[string]bool, len(paths))
	for _, path := range paths {
		absolute, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		watched[absolute] = true
	}

	return &Watcher{
		paths:      watched,
		debounce:   DefaultDebounce,
		regenerate: regenerate,
	}, nil
}

// Run blocks dispatching regenerations until ctx is cancelled. The watcher
// registers the parent directories rather than the files themselves because
// many editors replace files on save, which would drop a file-level watch.
func (w *Watcher) Run(ctx context.Context) error {
	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer notifier.Close()

	for _, dir := range w.dirs() {
		if err := notifier.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	logrus.WithField("files", len(w.paths)).Info("watching transcripts for changes")

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-notifier.Events:
			if !w.paths[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logrus.WithField("file", event.Name).Debug("transcript changed")
			pending = time.After(w.debounce)

		case err := <-notifier.Errors:
			logrus.WithError(err).Warn("file watcher error")

		case <-pending:
			pending = nil
			if err := w.regenerate(); err != nil {
				logrus.WithError(err).Error("regeneration failed")
			}
		}
	}
}

// dirs returns the deduplicated parent directories of the watched files.
func (w *Watcher) dirs() []string {
	seen := make(map[string]bool, len(w.paths))
	dirs := make([]string, 0, len(w.paths))
	for path := range w.paths {
		dir := filepath.Dir(path)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
