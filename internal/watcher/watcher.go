// Package watcher triggers keymap reloads when binding files change
// on disk. It wraps fsnotify and coalesces event bursts, since editors
// emit several write events per save.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

var (
	// ErrWatcherClosed is returned by operations on a closed watcher.
	ErrWatcherClosed = errors.New("watcher is closed")

	// ErrPathNotExist is returned when a watch path does not exist.
	ErrPathNotExist = errors.New("path does not exist")
)

// Handler is called once per coalesced change burst with the paths
// that changed. It runs on the watcher goroutine.
type Handler func(paths []string)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the watcher waits after the last event
// before firing the handler. The default is 200ms.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// Watcher monitors binding files and directories for changes.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	handler  Handler
	debounce time.Duration

	// Extensions that count as binding files. Empty means all.
	exts map[string]bool

	pending map[string]bool
	timer   *time.Timer

	closed  bool
	closeCh chan struct{}
	doneWg  sync.WaitGroup
}

// New creates a watcher that calls handler with the changed paths.
func New(handler Handler, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		handler:  handler,
		debounce: 200 * time.Millisecond,
		exts: map[string]bool{
			".json": true, ".toml": true,
			".yaml": true, ".yml": true,
			".lua": true,
		},
		pending: make(map[string]bool),
		closeCh: make(chan struct{}),
	}

	w.doneWg.Add(1)
	go w.loop()

	return w, nil
}

// Watch adds a file or directory to the watch set. Watching a
// directory covers binding files created in it later.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}

	return w.fsw.Add(absPath)
}

// Close stops the watcher. A pending debounce burst is discarded.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.doneWg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.doneWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) &&
		!ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
		return
	}
	if !w.exts[filepath.Ext(ev.Name)] {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	w.pending[ev.Name] = true
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.fire)
	} else {
		w.timer.Reset(w.debounce)
	}
}

// fire drains the pending set and invokes the handler once.
func (w *Watcher) fire() {
	w.mu.Lock()
	if w.closed || len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]bool)
	w.timer = nil
	w.mu.Unlock()

	w.handler(paths)
}
