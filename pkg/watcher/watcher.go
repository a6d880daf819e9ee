// Package watcher reloads a single file when it changes on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches one file and triggers a callback after changes
// settle for the debounce interval. Editors that replace the file on
// save produce bursts of events; the debounce collapses them.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	path     string
	callback func(string)
	debounce time.Duration
	timer    *time.Timer
}

// New creates a watcher with the given debounce interval.
func New(debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &FileWatcher{watcher: w, debounce: debounce}, nil
}

// Watch registers the file and starts delivering change notifications
// to callback. The containing directory is watched rather than the
// file itself, so atomic rename-over saves keep working.
func (fw *FileWatcher) Watch(path string, callback func(string)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	if err := fw.watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", abs, err)
	}

	fw.mu.Lock()
	fw.path = abs
	fw.callback = callback
	fw.mu.Unlock()

	go fw.loop()
	return nil
}

func (fw *FileWatcher) loop() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				fw.handleChange(event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fmt.Printf("Watcher error: %v\n", err)
		}
	}
}

// handleChange restarts the debounce timer for events on the watched file.
func (fw *FileWatcher) handleChange(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if path != fw.path {
		return
	}

	if fw.timer != nil {
		fw.timer.Stop()
	}
	callback, watched := fw.callback, fw.path
	fw.timer = time.AfterFunc(fw.debounce, func() {
		callback(watched)
	})
}

// Close stops the watcher.
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()
	return fw.watcher.Close()
}
