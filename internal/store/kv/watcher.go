package kv

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a File backend made by other processes, such
// as the CLI deleting a record while the window is open.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
}

// Watch starts watching path and calls onChange, debounced, after writes.
// The directory is watched so atomic replace-by-rename is seen too.
func Watch(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	w := &Watcher{watcher: fw, path: absPath, debounce: debounce, done: make(chan struct{})}
	go w.loop(onChange)
	return w, nil
}

func (w *Watcher) loop(onChange func()) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.trigger(onChange)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[KV] Watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) trigger(onChange func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, onChange)
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	close(w.done)
	return w.watcher.Close()
}
