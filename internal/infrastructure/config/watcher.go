package config

import (
	"errors"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/fontstack/internal/logging"
)

var errNotLoaded = errors.New("configuration not loaded")

// Watch reloads the configuration whenever the file changes and passes each
// valid result to the OnConfigChange callbacks. An invalid edit keeps the
// previous configuration.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case m.config == nil:
		return errNotLoaded
	case m.watching:
		return nil
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")
		if err := m.applyChange(); err != nil {
			log.Warn().Err(err).Msg("keeping previous configuration")
		}
	})
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

// OnConfigChange registers fn. Each call receives its own copy.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	m.callbacks = append(m.callbacks, fn)
	m.mu.Unlock()
}

// applyChange rereads the file and runs the callbacks outside the lock.
func (m *Manager) applyChange() error {
	m.mu.Lock()
	cfg, err := m.read()
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.config = cfg
	callbacks := append([]func(*Config){}, m.callbacks...)
	m.mu.Unlock()

	for _, fn := range callbacks {
		c := *cfg
		fn(&c)
	}
	return nil
}

func (m *Manager) read() (*Config, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return m.decode()
}
