package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager over the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a configuration manager reading config.toml from dir.
func NewManagerAt(dir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	// FONTSTACK_TYPOGRAPHY_BASE_FONT_SIZE, FONTSTACK_DATABASE_PATH, ...
	v.SetEnvPrefix("FONTSTACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "FONTSTACK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind FONTSTACK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "FONTSTACK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind FONTSTACK_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		dir:       dir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A
// missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	cfg, err := m.decode()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// decode turns the values viper holds into a normalized, valid Config.
func (m *Manager) decode() (*Config, error) {
	cfg, err := m.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	if err := ensureDatabasePath(cfg); err != nil {
		return nil, err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.ConfigPath(), err)
		}
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.dir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	config.Typography.PrimaryLanguages = normalizeList(config.Typography.PrimaryLanguages)
	config.Typography.Languages = normalizeList(config.Typography.Languages)

	config.Fonts.Directory = strings.TrimSpace(config.Fonts.Directory)
	config.Fonts.URLPrefix = strings.TrimRight(strings.TrimSpace(config.Fonts.URLPrefix), "/")
	config.Fonts.SystemFallbacks = normalizeList(config.Fonts.SystemFallbacks)
	config.Database.Path = strings.TrimSpace(config.Database.Path)
}

// normalizeList trims entries and drops empty ones and repeats.
func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// ConfigPath returns the path of the configuration file.
func (m *Manager) ConfigPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.dir, configName)
}

// InitFile writes the defaults to the configuration file. An existing file
// is kept unless force is set.
func (m *Manager) InitFile(force bool) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := filepath.Join(m.dir, configName)
	if _, err := os.Stat(path); err == nil && !force {
		return path, false, nil
	}
	if err := m.createDefaultConfig(); err != nil {
		return path, false, err
	}
	return path, true, nil
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return err
	}
	return WriteConfigOrdered(DefaultConfig(), filepath.Join(m.dir, configName))
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is set dynamically in Load(), no default needed
	m.viper.SetDefault("database.path", "")

	m.setLoggingDefaults(defaults)
	m.setTypographyDefaults(defaults)
	m.setExportDefaults(defaults)
	m.setFontsDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func (m *Manager) setTypographyDefaults(defaults *Config) {
	m.viper.SetDefault("typography.base_font_size", defaults.Typography.BaseFontSize)
	m.viper.SetDefault("typography.base_line_height", defaults.Typography.BaseLineHeight)
	m.viper.SetDefault("typography.global_fallback_scale", defaults.Typography.GlobalFallbackScale)
	m.viper.SetDefault("typography.primary_languages", defaults.Typography.PrimaryLanguages)
	m.viper.SetDefault("typography.languages", defaults.Typography.Languages)
}

func (m *Manager) setExportDefaults(defaults *Config) {
	m.viper.SetDefault("export.include_font_face", defaults.Export.IncludeFontFace)
	m.viper.SetDefault("export.use_css_variables", defaults.Export.UseCSSVariables)
	m.viper.SetDefault("export.include_comments", defaults.Export.IncludeComments)
	m.viper.SetDefault("export.pretty_print", defaults.Export.PrettyPrint)
}

func (m *Manager) setFontsDefaults(defaults *Config) {
	m.viper.SetDefault("fonts.directory", defaults.Fonts.Directory)
	m.viper.SetDefault("fonts.parse_concurrency", defaults.Fonts.ParseConcurrency)
	m.viper.SetDefault("fonts.url_prefix", defaults.Fonts.URLPrefix)
	m.viper.SetDefault("fonts.system_fallbacks", defaults.Fonts.SystemFallbacks)
}
