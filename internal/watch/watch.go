// Package watch re-runs a callback when content files under a site root
// change, with debouncing so editor save bursts collapse into one run.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	bberrors "github.com/hwnotes/blogbuilder/internal/errors"
	"github.com/hwnotes/blogbuilder/internal/logfields"
)

// DefaultDebounce is how long after the last filesystem event the callback
// fires.
const DefaultDebounce = 300 * time.Millisecond

// Options configures a watch run.
type Options struct {
	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration

	// OnChange runs after each settled burst of changes. It runs on the
	// watch goroutine; slow work should not block indefinitely.
	OnChange func()
}

// Run watches root recursively and blocks until ctx is canceled.
func Run(ctx context.Context, root string, opts Options) error {
	if opts.OnChange == nil {
		return bberrors.InternalError("watch requires an OnChange callback", nil)
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return bberrors.Wrap(err, bberrors.CategoryFileSystem, bberrors.SeverityFatal, "filesystem watcher unavailable")
	}
	defer func() { _ = watcher.Close() }()

	if err := addDirsRecursive(watcher, root); err != nil {
		return err
	}
	slog.Info("Watching for changes", logfields.Path(root))

	changed := make(chan struct{}, 1)
	trigger := newDebouncer(debounce, changed)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
			opts.OnChange()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleEvent(watcher, ev, trigger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// newDebouncer returns a trigger that signals ch once events stop arriving
// for the given window.
func newDebouncer(window time.Duration, ch chan struct{}) func() {
	var mu sync.Mutex
	var timer *time.Timer
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(window, func() {
			select {
			case ch <- struct{}{}:
			default:
			}
		})
	}
}

func handleEvent(watcher *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if ignoreEvent(ev.Name) {
		return
	}
	// New directories need their own watch before events inside them arrive.
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(watcher, ev.Name)
		}
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	trigger()
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			slog.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
		}
		return nil
	})
}

// ignoreEvent filters hidden files and editor temp/swap files so saves do
// not double-trigger.
func ignoreEvent(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		(strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#")) {
		return true
	}
	return base == "Thumbs.db"
}
