// Package config loads the fontstack configuration with Viper from a TOML
// file under XDG_CONFIG_HOME, overridable with FONTSTACK_* variables.
package config

import (
	"github.com/rs/zerolog"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/logging"
)

// Config represents the complete configuration for fontstack.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging"`
	Typography TypographyConfig `mapstructure:"typography" toml:"typography"`
	Export     ExportConfig     `mapstructure:"export" toml:"export"`
	// Database locates the profile store.
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	Fonts    FontsConfig    `mapstructure:"fonts" toml:"fonts"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// TypographyConfig seeds new sessions.
type TypographyConfig struct {
	BaseFontSize        float64  `mapstructure:"base_font_size" toml:"base_font_size"`
	BaseLineHeight      float64  `mapstructure:"base_line_height" toml:"base_line_height"`
	GlobalFallbackScale float64  `mapstructure:"global_fallback_scale" toml:"global_fallback_scale"`
	PrimaryLanguages    []string `mapstructure:"primary_languages" toml:"primary_languages"`
	Languages           []string `mapstructure:"languages" toml:"languages"`
}

// ExportConfig holds the default stylesheet options.
type ExportConfig struct {
	IncludeFontFace bool `mapstructure:"include_font_face" toml:"include_font_face"`
	UseCSSVariables bool `mapstructure:"use_css_variables" toml:"use_css_variables"`
	IncludeComments bool `mapstructure:"include_comments" toml:"include_comments"`
	PrettyPrint     bool `mapstructure:"pretty_print" toml:"pretty_print"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// FontsConfig controls where font files come from.
type FontsConfig struct {
	Directory        string   `mapstructure:"directory" toml:"directory"`
	ParseConcurrency int      `mapstructure:"parse_concurrency" toml:"parse_concurrency"`
	URLPrefix        string   `mapstructure:"url_prefix" toml:"url_prefix"`
	SystemFallbacks  []string `mapstructure:"system_fallbacks" toml:"system_fallbacks"`
}

// LoggerConfig converts the logging section for logging.New.
func (c *Config) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.Logging.Level)
	if c.Logging.Format == "json" {
		cfg.Format = "json"
	}
	if cfg.Level == zerolog.TraceLevel {
		cfg.TimeFormat = "15:04:05.000"
	}
	return cfg
}

// CSSOptions converts the export section.
func (c *Config) CSSOptions() port.CSSOptions {
	return port.CSSOptions{
		IncludeFontFace: c.Export.IncludeFontFace,
		UseCSSVariables: c.Export.UseCSSVariables,
		IncludeComments: c.Export.IncludeComments,
		PrettyPrint:     c.Export.PrettyPrint,
	}
}

// NewSession creates a session seeded with the typography section.
func (c *Config) NewSession() (*entity.Session, error) {
	s := entity.NewSession()
	t := c.Typography
	if err := s.SetBaseTypography(t.BaseFontSize, t.BaseLineHeight); err != nil {
		return nil, err
	}
	if err := s.Overrides.SetGlobalFallbackScale(t.GlobalFallbackScale); err != nil {
		return nil, err
	}
	for _, lang := range t.Languages {
		if err := s.AddLanguage(entity.LanguageID(lang), false); err != nil {
			return nil, err
		}
	}
	for _, lang := range t.PrimaryLanguages {
		if err := s.AddLanguage(entity.LanguageID(lang), true); err != nil {
			return nil, err
		}
	}
	return s, nil
}
