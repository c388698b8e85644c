package config

import "github.com/bnema/fontstack/internal/domain/entity"

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	// 0 uses GOMAXPROCS
	defaultParseConcurrency = 0
	maxParseConcurrency     = 256

	defaultURLPrefix = "fonts"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Typography: TypographyConfig{
			BaseFontSize:        entity.DefaultBaseFontSize,
			BaseLineHeight:      entity.DefaultBaseLineHeight,
			GlobalFallbackScale: entity.DefaultGlobalFallbackScale,
			PrimaryLanguages:    []string{},
			Languages:           []string{},
		},
		Export: ExportConfig{
			IncludeFontFace: true,
			UseCSSVariables: true,
			IncludeComments: true,
			PrettyPrint:     true,
		},
		Fonts: FontsConfig{
			ParseConcurrency: defaultParseConcurrency,
			URLPrefix:        defaultURLPrefix,
			SystemFallbacks:  []string{},
		},
	}
}
