package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the config file when it changes and delivers the result on
// Events. Editors save with bursts of writes, so events are debounced; a
// reload that fails to parse is logged and dropped rather than delivered.
type Watcher struct {
	path    string
	logger  *zap.Logger
	watcher *fsnotify.Watcher
	events  chan Config

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	debounce time.Duration
}

// NewWatcher creates a watcher for the given config file. The parent
// directory is watched, not the file, so atomic rename-style saves are seen.
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		path:     path,
		logger:   logger,
		watcher:  fw,
		events:   make(chan Config, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		debounce: 250 * time.Millisecond,
	}, nil
}

// Events delivers each successfully reloaded configuration.
func (w *Watcher) Events() <-chan Config {
	return w.events
}

// Start begins watching. Non-blocking; safe to call once.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		_ = w.watcher.Close()
		return err
	}

	w.running = true
	go w.loop()
	return nil
}

// Stop tears the watcher down. Idempotent; pending timers are abandoned.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	w.mu.Unlock()

	_ = w.watcher.Close()
	<-w.doneCh
}

func (w *Watcher) loop() {
	defer close(w.doneCh)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			cfg, err := Load(w.path)
			if err != nil {
				w.logger.Warn("config reload failed", zap.Error(err))
				continue
			}
			// Consumer behind: replace the undelivered reload with this one.
			select {
			case <-w.events:
			default:
			}
			select {
			case w.events <- *cfg:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", zap.Error(err))
		}
	}
}
