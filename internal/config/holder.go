package config

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// debounceDuration collapses rapid file events (editors write several
// times per save) into a single reload.
const debounceDuration = 500 * time.Millisecond

// Snapshot bundles a validated Config with its derived fields. A Snapshot
// is immutable once built.
type Snapshot struct {
	Config  Config
	Derived Derived
}

// NewSnapshot builds a snapshot from an already validated config.
func NewSnapshot(c Config) Snapshot {
	return Snapshot{
		Config:  c,
		Derived: Derive(c.Webserver),
	}
}

// Holder owns the current configuration snapshot. Readers call Get and
// always observe one snapshot wholly, never a mix of two. Reload swaps
// the snapshot atomically and keeps the old one when loading fails.
type Holder struct {
	mu      sync.RWMutex
	current Snapshot
	dir     string

	watcher *fsnotify.Watcher

	listenerMu sync.RWMutex
	listeners  []chan<- Snapshot
}

// NewHolder creates a holder around an initial config read from dir.
func NewHolder(initial Config, dir string) *Holder {
	return &Holder{
		current: NewSnapshot(initial),
		dir:     dir,
	}
}

// Get returns the current snapshot.
func (h *Holder) Get() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.current
}

// Reload re-reads the configuration from disk, validates it and swaps the
// snapshot. On any failure the previous snapshot stays in place.
func (h *Holder) Reload() error {
	log.Info().Str("dir", h.dir).Msg("reloading configuration")

	newCfg, err := ReadConfig(h.dir)
	if err != nil {
		log.Error().Err(err).Msg("config reload failed, keeping previous snapshot")

		return errors.Wrap(err, "reload config")
	}

	newSnap := NewSnapshot(newCfg)

	h.mu.Lock()
	old := h.current
	h.current = newSnap
	h.mu.Unlock()

	h.notifyListeners(newSnap)
	logChanges(&old.Config, &newCfg)

	log.Info().Str("url", newSnap.Derived.URL).Msg("configuration reloaded")

	return nil
}

// StartWatcher watches the config directory and triggers debounced
// reloads on file writes. The watcher stops when ctx is cancelled.
func (h *Holder) StartWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create config watcher")
	}

	if err = watcher.Add(h.dir); err != nil {
		_ = watcher.Close()

		return errors.Wrap(err, "watch config directory")
	}

	h.watcher = watcher

	log.Info().Str("dir", h.dir).Msg("watching config directory for changes")

	go h.watchLoop(ctx)

	return nil
}

func (h *Holder) watchLoop(ctx context.Context) {
	var debounce *time.Timer

	for {
		select {
		case <-ctx.Done():
			_ = h.watcher.Close()

			log.Info().Msg("config watcher stopped")

			return

		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}

			// Write and Create cover vim, nano and plain redirection.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}

			debounce = time.AfterFunc(debounceDuration, func() {
				if err := h.Reload(); err != nil {
					log.Error().Err(err).Msg("automatic config reload failed")
				}
			})

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}

			log.Error().Err(err).Msg("config watcher error")
		}
	}
}

// Stop stops the config watcher if it is running.
func (h *Holder) Stop() {
	if h.watcher != nil {
		_ = h.watcher.Close()
	}
}

// RegisterListener registers a channel receiving every new snapshot after
// a successful reload. Sends are non-blocking, a full channel is skipped.
func (h *Holder) RegisterListener(ch chan<- Snapshot) {
	h.listenerMu.Lock()
	defer h.listenerMu.Unlock()

	h.listeners = append(h.listeners, ch)
}

func (h *Holder) notifyListeners(snap Snapshot) {
	h.listenerMu.RLock()
	defer h.listenerMu.RUnlock()

	for _, ch := range h.listeners {
		select {
		case ch <- snap:
		default:
			log.Warn().Msg("skipped config listener, channel full")
		}
	}
}

// logChanges logs the user-visible differences between two configs.
func logChanges(old, newCfg *Config) {
	if old.Webserver != newCfg.Webserver {
		log.Info().
			Str("old", WebserverURL(old.Webserver.HTTPS, old.Webserver.Hostname, old.Webserver.Port)).
			Str("new", WebserverURL(newCfg.Webserver.HTTPS, newCfg.Webserver.Hostname, newCfg.Webserver.Port)).
			Msg("config changed: webserver")
	}

	if old.Signup != newCfg.Signup {
		log.Info().
			Bool("old", old.Signup.Enabled).
			Bool("new", newCfg.Signup.Enabled).
			Msg("config changed: signup")
	}

	if old.Instance != newCfg.Instance {
		log.Info().
			Str("old", old.Instance.Name).
			Str("new", newCfg.Instance.Name).
			Msg("config changed: instance")
	}
}
