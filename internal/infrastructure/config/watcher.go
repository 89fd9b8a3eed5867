package config

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/workbench/internal/logging"
)

// Watch starts watching the config file for changes and reloads automatically.
// Callbacks triggered by the watcher receive ctx.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.FromContext(ctx)
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		m.mu.Lock()
		previous := m.config
		config, err := m.build()
		if err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
			m.mu.Unlock()
			return
		}
		m.config = config
		m.notifyCallbacksLocked(ctx, previous)
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked(ctx context.Context, previous *Config) {
	current := m.config
	callbacks := make([]func(context.Context, *Config, *Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	if previous == nil {
		previous = DefaultConfig()
	}
	for _, callback := range callbacks {
		callback(ctx, previous, current)
	}
}

// OnConfigChange registers a callback called after every reload with the
// configuration before and after it. Own writes and external edits both
// trigger it, including reloads that changed nothing.
func (m *Manager) OnConfigChange(callback func(ctx context.Context, previous, current *Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}
