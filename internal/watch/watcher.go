// Package watch re-runs a callback when a documentation tree changes.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/linkcheck/internal/docscan"
	"git.home.luguber.info/inful/linkcheck/internal/logfields"
)

// Watcher monitors a documentation root and invokes a callback after changes,
// debounced so editor save bursts trigger a single run.
type Watcher struct {
	root     string
	debounce time.Duration
	exclude  docscan.ExcludeFunc
	onChange func(context.Context)
}

// New creates a watcher for root. onChange runs after each debounced burst of
// relevant filesystem events.
func New(root string, debounce time.Duration, onChange func(context.Context)) *Watcher {
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	return &Watcher{
		root:     root,
		debounce: debounce,
		exclude:  docscan.DefaultExcluded,
		onChange: onChange,
	}
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil {
			slog.Error("Error closing file watcher", logfields.Error(closeErr))
		}
	}()

	if err := w.addTree(watcher, w.root); err != nil {
		return err
	}

	slog.Info("Watching documentation tree", logfields.Root(w.root))

	// The timer is armed on the first relevant event and reset on each
	// subsequent one; firing means the burst settled.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if event.Op.Has(fsnotify.Create) {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if addErr := w.addTree(watcher, event.Name); addErr != nil {
						slog.Warn("Failed to watch new directory", logfields.Path(event.Name), logfields.Error(addErr))
					}
				}
			}
			timer.Reset(w.debounce)

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("File watcher error", logfields.Error(watchErr))

		case <-timer.C:
			w.onChange(ctx)
		}
	}
}

// addTree registers root and every non-excluded subdirectory.
func (w *Watcher) addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path != root {
				return fs.SkipDir
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.exclude(d.Name()) {
			return fs.SkipDir
		}
		if addErr := watcher.Add(path); addErr != nil {
			return fmt.Errorf("failed to watch directory %s: %w", path, addErr)
		}
		return nil
	})
}

// relevant filters events down to markdown documents and directory changes.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	name := filepath.Base(event.Name)
	if w.exclude(name) {
		return false
	}
	if strings.HasSuffix(name, ".md") {
		return true
	}
	// Directory creates/renames change the candidate tree too.
	info, err := os.Stat(event.Name)
	if err != nil {
		// The path is already gone; only a removed directory can still
		// matter, and directories carry no extension.
		if filepath.Ext(name) != "" {
			return false
		}
		return event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename)
	}
	return info.IsDir()
}
