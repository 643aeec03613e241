package theme

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/viewkit/pkg/logger"
)

// Holder provides thread-safe access to the current theme with hot reload.
type Holder struct {
	mu       sync.RWMutex
	theme    *Theme
	path     string
	log      *slog.Logger
	watcher  *fsnotify.Watcher
	onChange []func(*Theme)
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewHolder loads the theme file and wraps it in a holder.
func NewHolder(path string, log *slog.Logger) (*Holder, error) {
	t, err := Load(path)
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("absolute path: %w", err)
	}

	if log == nil {
		log = slog.Default()
	}

	return &Holder{
		theme:  t,
		path:   absPath,
		log:    log,
		stopCh: make(chan struct{}),
	}, nil
}

// Get returns the current theme.
func (h *Holder) Get() *Theme {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.theme
}

// Reload re-reads the theme file. On failure the current theme stays in
// place and the error is returned.
func (h *Holder) Reload() error {
	next, err := Load(h.path)
	if err != nil {
		h.log.Error("theme reload failed, keeping current theme",
			slog.String("path", h.path),
			logger.Error(err),
		)
		return err
	}

	h.mu.Lock()
	h.theme = next
	callbacks := slices.Clone(h.onChange)
	h.mu.Unlock()

	for _, fn := range callbacks {
		fn(next)
	}

	h.log.Info("theme reloaded",
		slog.String("path", h.path),
		slog.String("theme", next.Name),
	)
	return nil
}

// OnChange registers a callback invoked with the new theme after every
// successful reload.
func (h *Holder) OnChange(fn func(*Theme)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onChange = append(h.onChange, fn)
}

// Watch reloads the theme whenever the file changes on disk. The watch is on
// the file's directory because editors doing atomic saves replace the file
// rather than write to it.
func (h *Holder) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	h.watcher = watcher

	dir := filepath.Dir(h.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	go h.watchLoop()

	h.log.Info("watching theme file", slog.String("path", h.path))
	return nil
}

// Stop ends file watching. The holder remains usable for Get and Reload.
// Stop is idempotent.
func (h *Holder) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopCh)
		if h.watcher != nil {
			h.watcher.Close()
		}
	})
}

func (h *Holder) watchLoop() {
	filename := filepath.Base(h.path)

	for {
		select {
		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			// Write for in-place saves, Create for atomic saves.
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if err := h.Reload(); err != nil {
					h.log.Error("theme watch reload failed", logger.Error(err))
				}
			}

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			h.log.Error("theme watcher error", logger.Error(err))

		case <-h.stopCh:
			return
		}
	}
}
