// Package watch monitors chart dataset files and reports debounced
// change events so the caller can recompute the wheel on every input
// change.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change represents a detected dataset file change.
type Change struct {
	File string // Absolute path of the changed dataset
}

// Watcher monitors the directories containing the given dataset files
// using fsnotify. Editors replace files on save, so the watch is on
// the parent directory with events filtered back to the tracked names.
type Watcher struct {
	Changes <-chan Change // Read-only external channel

	files   map[string]bool
	changes chan Change // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given dataset files.
func NewWatcher(files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	tracked := make(map[string]bool, len(files))
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			fw.Close()
			return nil, err
		}
		tracked[abs] = true
	}

	ch := make(chan Change, 16)
	w := &Watcher{
		Changes: ch,
		files:   tracked,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the parent directories of the tracked files.
func (w *Watcher) Start() error {
	dirs := map[string]bool{}
	for file := range w.files {
		dirs[filepath.Dir(file)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: editors fire several events per save; track the last
	// event time per file and emit once the burst settles.
	const debounce = 100 * time.Millisecond
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for file := range pending {
					w.emit(file)
				}
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			pending[abs] = time.Now()

		case <-ticker.C:
			now := time.Now()
			for file, last := range pending {
				if now.Sub(last) >= debounce {
					delete(pending, file)
					w.emit(file)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) emit(file string) {
	select {
	case w.changes <- Change{File: file}:
	default:
		// channel full, drop; the next save re-triggers
	}
}
