package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadEvent reports a re-read of the watched definition file. Exactly one
// of Definition and Err is set.
type ReloadEvent struct {
	Definition *Definition
	Err        error
	Time       time.Time
}

// Watcher monitors a definition file and reloads it on change. The parent
// directory is watched rather than the file itself so that editors that
// save through rename are still picked up.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher creates a watcher for the definition at path.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch directory %s: %w", filepath.Dir(abs), err)
	}

	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}
	return &Watcher{path: abs, watcher: fsw, debounce: debounce}, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Watch starts watching and returns a channel of reload events.
// Cancelling the context stops watching. The returned channel is closed
// when the context is cancelled or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context) <-chan ReloadEvent {
	out := make(chan ReloadEvent, 8)

	go func() {
		defer close(out)

		// Debounce timer to coalesce the burst of events a single save emits
		debounceTimer := time.NewTimer(0)
		if !debounceTimer.Stop() {
			<-debounceTimer.C
		}
		pending := false

		emit := func(ev ReloadEvent) bool {
			select {
			case out <- ev:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !w.relevant(event) {
					continue
				}
				pending = true
				debounceTimer.Stop()
				debounceTimer.Reset(w.debounce)

			case <-debounceTimer.C:
				if !pending {
					continue
				}
				pending = false
				def, err := Load(w.path)
				if !emit(ReloadEvent{Definition: def, Err: err, Time: time.Now()}) {
					return
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				if !emit(ReloadEvent{Err: fmt.Errorf("watching %s: %w", w.path, err), Time: time.Now()}) {
					return
				}
			}
		}
	}()

	return out
}

// Close stops watching and cleans up resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// relevant reports whether ev touches the watched file with a change that
// can alter its content.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) || ev.Has(fsnotify.Rename)
}
