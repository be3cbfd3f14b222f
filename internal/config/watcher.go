package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tally-cli/internal/logging"
)

// debounceWindow batches the burst of events an editor produces on save.
const debounceWindow = 100 * time.Millisecond

// Watcher monitors config.toml and emits the re-parsed config after each change.
type Watcher struct {
	watcher   *fsnotify.Watcher
	path      string
	log       *slog.Logger
	changes   chan *Config
	closeCh   chan struct{}
	closeOnce sync.Once

	lastModified time.Time
	modMu        sync.Mutex
}

// NewWatcher watches path's parent directory, so the file may not exist yet.
func NewWatcher(path string) (*Watcher, error) {
	resolved := path
	if abs, err := filepath.Abs(path); err == nil {
		resolved = abs
	}
	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	// Resolve the directory rather than the file: events are reported under the watched dir.
	if rd, err := filepath.EvalSymlinks(dir); err == nil {
		dir = rd
		resolved = filepath.Join(rd, filepath.Base(resolved))
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch directory %s: %w", dir, err)
	}

	var lastMod time.Time
	if info, err := os.Stat(resolved); err == nil {
		lastMod = info.ModTime()
	}

	return &Watcher{
		watcher:      w,
		path:         resolved,
		log:          logging.ForComponent(logging.CompConfig),
		changes:      make(chan *Config, 1),
		closeCh:      make(chan struct{}),
		lastModified: lastMod,
	}, nil
}

// Path returns the resolved file being watched.
func (cw *Watcher) Path() string { return cw.path }

// Changes delivers each successfully parsed config. Only the newest is kept.
func (cw *Watcher) Changes() <-chan *Config { return cw.changes }

// Start begins watching (non-blocking).
func (cw *Watcher) Start() {
	go cw.loop()
}

func (cw *Watcher) loop() {
	debounce := time.NewTimer(0)
	debounce.Stop()

	for {
		select {
		case <-cw.closeCh:
			return

		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != cw.path {
				continue
			}
			if ev.Op&fsnotify.Remove == fsnotify.Remove {
				continue
			}
			debounce.Reset(debounceWindow)

		case <-debounce.C:
			cw.reload()

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.log.Warn("config watcher error", slog.String("error", err.Error()))
		}
	}
}

func (cw *Watcher) reload() {
	info, err := os.Stat(cw.path)
	if err != nil {
		// Mid atomic rename; the create event will follow.
		return
	}
	cw.modMu.Lock()
	if !info.ModTime().After(cw.lastModified) {
		cw.modMu.Unlock()
		return
	}
	cw.lastModified = info.ModTime()
	cw.modMu.Unlock()

	cfg, err := LoadFile(cw.path)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			cw.log.Warn("config reload skipped", slog.String("path", cw.path), slog.String("error", pe.Err.Error()))
		} else {
			cw.log.Warn("config reload failed", slog.String("error", err.Error()))
		}
		return
	}
	for _, w := range cfg.Normalize() {
		cw.log.Warn("config value ignored", slog.String("detail", w))
	}
	cw.log.Info("config reloaded", slog.String("theme", cfg.Theme), slog.String("glyphs", cfg.Glyphs))

	select {
	case <-cw.changes:
	default:
	}
	select {
	case cw.changes <- cfg:
	default:
	}
}

// Close stops the watcher and releases resources.
func (cw *Watcher) Close() error {
	var err error
	cw.closeOnce.Do(func() {
		close(cw.closeCh)
		err = cw.watcher.Close()
	})
	return err
}
