package server

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/goliatone/go-uikit/internal/logging"
)

// DefaultDebounce groups bursts of file events into one change notification.
const DefaultDebounce = 50 * time.Millisecond

// Watch registers dir and its subdirectories with fsnotify and calls
// onChange with the last changed path after events settle. It returns once the
// watcher is registered; the returned channel is closed after ctx is done and
// the watcher has shut down.
func Watch(ctx context.Context, dir string, onChange func(name string), logger *logging.Logger) (<-chan struct{}, error) {
	if onChange == nil {
		return nil, fmt.Errorf("server: watch %s: change callback is required", dir)
	}
	if logger == nil {
		logger = logging.Nop()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("server: create watcher: %w", err)
	}
	if err := addRecursive(watcher, dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	debounce := newDebouncer(DefaultDebounce, onChange)
	log := logger.WithFields(map[string]any{"dir": dir})

	go func() {
		defer close(done)
		defer debounce.stop()
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op == fsnotify.Chmod {
					continue
				}
				if event.Has(fsnotify.Create) {
					if err := addRecursive(watcher, event.Name); err != nil {
						log.Warn(fmt.Sprintf("watch new path %s: %v", event.Name, err))
					}
				}
				log.Debug("template change: " + event.Name)
				debounce.trigger(event.Name)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error(err, "watcher error")
			}
		}
	}()

	return done, nil
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("server: watch %s: %w", path, err)
		}
		if !entry.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("server: watch %s: %w", path, err)
		}
		return nil
	})
}

type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(string)
	timer   *time.Timer
	last    string
	stopped bool
}

func newDebouncer(delay time.Duration, fn func(string)) *debouncer {
	return &debouncer{delay: delay, fn: fn}
}

func (d *debouncer) trigger(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.last = name
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *debouncer) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	name := d.last
	d.mu.Unlock()
	d.fn(name)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
