package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontstack/internal/domain/entity"
)

func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	return filepath.Join(root, "config", appName)
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configName), []byte(content), filePerm))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	dir := isolate(t)
	m, err := NewManager()
	require.NoError(t, err)

	require.NoError(t, m.Load())

	assert.FileExists(t, filepath.Join(dir, configName))
	cfg := m.Get()
	assert.Equal(t, defaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, entity.DefaultBaseFontSize, cfg.Typography.BaseFontSize)
	assert.Equal(t, defaultURLPrefix, cfg.Fonts.URLPrefix)
	wantDB, err := GetDatabaseFile()
	require.NoError(t, err)
	assert.Equal(t, wantDB, cfg.Database.Path)
	assert.Equal(t, filepath.Join(dir, configName), m.ConfigPath())
}

func TestManager_LoadReadsFileAndNormalizes(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
[logging]
level = ' DEBUG '
format = 'text'

[typography]
base_font_size = 18.0
primary_languages = ['de', ' de', '']
languages = ['ja', 'zh']

[fonts]
url_prefix = '/static/fonts/'
system_fallbacks = ['Georgia', 'serif']
`)
	m, err := NewManagerAt(dir)
	require.NoError(t, err)

	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 18.0, cfg.Typography.BaseFontSize)
	assert.Equal(t, entity.DefaultBaseLineHeight, cfg.Typography.BaseLineHeight, "unset keys keep defaults")
	assert.Equal(t, []string{"de"}, cfg.Typography.PrimaryLanguages)
	assert.Equal(t, []string{"ja", "zh"}, cfg.Typography.Languages)
	assert.Equal(t, "/static/fonts", cfg.Fonts.URLPrefix)
	assert.Equal(t, []string{"Georgia", "serif"}, cfg.Fonts.SystemFallbacks)
}

func TestManager_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	t.Setenv("FONTSTACK_LOG_LEVEL", "trace")
	t.Setenv("FONTSTACK_TYPOGRAPHY_BASE_LINE_HEIGHT", "1.75")
	t.Setenv("FONTSTACK_DATABASE_PATH", "/tmp/profiles.sqlite")
	m, err := NewManagerAt(dir)
	require.NoError(t, err)

	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "trace", cfg.Logging.Level)
	assert.Equal(t, 1.75, cfg.Typography.BaseLineHeight)
	assert.Equal(t, "/tmp/profiles.sqlite", cfg.Database.Path)
	assert.Equal(t, zerolog.TraceLevel, cfg.LoggerConfig().Level)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
[typography]
base_font_size = -1.0

[fonts]
parse_concurrency = 1000
`)
	m, err := NewManagerAt(dir)
	require.NoError(t, err)

	err = m.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "typography.base_font_size")
	assert.Contains(t, err.Error(), "fonts.parse_concurrency")
}

func TestManager_LoadRejectsMalformedTOML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "[typography\nbase_font_size = ")
	m, err := NewManagerAt(dir)
	require.NoError(t, err)

	assert.Error(t, m.Load())
}

func TestManager_GetBeforeLoadReturnsDefaults(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), m.Get())
}

func TestManager_GetReturnsCopy(t *testing.T) {
	dir := isolate(t)
	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	m.Get().Logging.Level = "error"

	assert.Equal(t, defaultLogLevel, m.Get().Logging.Level)
}

func TestManager_InitFile(t *testing.T) {
	dir := isolate(t)
	m, err := NewManagerAt(dir)
	require.NoError(t, err)

	path, created, err := m.InitFile(false)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, filepath.Join(dir, configName), path)

	require.NoError(t, os.WriteFile(path, []byte("[logging]\nlevel = 'warn'\n"), filePerm))
	_, created, err = m.InitFile(false)
	require.NoError(t, err)
	assert.False(t, created, "existing file is kept")

	_, created, err = m.InitFile(true)
	require.NoError(t, err)
	assert.True(t, created)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "level = 'info'")
}

func TestManager_ReloadNotifiesCallbacks(t *testing.T) {
	dir := isolate(t)
	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	var got *Config
	m.OnConfigChange(func(c *Config) { got = c })
	writeConfig(t, dir, "[typography]\nbase_font_size = 20.0\n")

	require.NoError(t, m.applyChange())

	require.NotNil(t, got)
	assert.Equal(t, 20.0, got.Typography.BaseFontSize)
	assert.Equal(t, 20.0, m.Get().Typography.BaseFontSize)
}

func TestManager_InvalidReloadKeepsConfig(t *testing.T) {
	dir := isolate(t)
	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	called := false
	m.OnConfigChange(func(*Config) { called = true })
	writeConfig(t, dir, "[typography]\nbase_font_size = -4.0\n")

	require.Error(t, m.applyChange())
	assert.False(t, called)
	assert.Equal(t, DefaultConfig().Typography.BaseFontSize, m.Get().Typography.BaseFontSize)
}

func TestManager_WatchRequiresLoad(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, m.Watch(), errNotLoaded)
}

func TestConfig_NewSession(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Typography.BaseFontSize = 18
	cfg.Typography.GlobalFallbackScale = 90
	cfg.Typography.Languages = []string{"ja"}
	cfg.Typography.PrimaryLanguages = []string{"de"}

	s, err := cfg.NewSession()

	require.NoError(t, err)
	assert.Equal(t, 18.0, s.BaseFontSize)
	assert.Equal(t, 90.0, s.Overrides.GlobalFallbackScale())
	assert.True(t, s.ConfiguredLanguages.Contains("ja"))
	assert.True(t, s.PrimaryLanguages.Contains("de"))
}

func TestConfig_NewSessionRejectsInvalidTypography(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Typography.BaseLineHeight = 0

	_, err := cfg.NewSession()

	assert.ErrorIs(t, err, entity.ErrInvalidValue)
}

func TestConfig_CSSOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Export.PrettyPrint = false

	opts := cfg.CSSOptions()

	assert.True(t, opts.IncludeFontFace)
	assert.True(t, opts.UseCSSVariables)
	assert.True(t, opts.IncludeComments)
	assert.False(t, opts.PrettyPrint)
}

func TestConfig_LoggerConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "bogus"
	cfg.Logging.Format = "json"

	lc := cfg.LoggerConfig()

	assert.Equal(t, zerolog.InfoLevel, lc.Level)
	assert.Equal(t, "json", lc.Format)
}
