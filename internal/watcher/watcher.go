package watcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for events to settle.
const DefaultDebounce = 200 * time.Millisecond

// ChangeFunc is called with the watched path after each settled change.
type ChangeFunc func(path string) error

// Watcher calls a ChangeFunc when a single file changes.
type Watcher struct {
	path     string
	onChange ChangeFunc
	fsw      *fsnotify.Watcher

	// Debounce is the quiet period required before onChange runs.
	Debounce time.Duration
	// Log receives diagnostics. Defaults to os.Stderr.
	Log io.Writer
}

// New creates a Watcher for path. The file's directory must exist.
func New(path string, onChange ChangeFunc) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("change callback cannot be nil")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		onChange: onChange,
		fsw:      fsw,
		Debounce: DefaultDebounce,
		Log:      os.Stderr,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close releases the underlying file watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// relevant reports whether ev touches the watched file in a way that
// changes its contents.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// Run processes events until ctx is cancelled. Errors returned by the
// callback are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	var timer *time.Timer
	var fire <-chan time.Time

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.Debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w.Log, "watcher: %v\n", err)

		case <-fire:
			fire = nil
			if _, err := os.Stat(w.path); err != nil {
				// File moved away mid-save; wait for it to reappear.
				continue
			}
			if err := w.onChange(w.path); err != nil {
				fmt.Fprintf(w.Log, "watcher: %s: %v\n", filepath.Base(w.path), err)
			}
		}
	}
}
