package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "zero line height",
			mutate:  func(c *Config) { c.Typography.BaseLineHeight = 0 },
			wantErr: "typography.base_line_height",
		},
		{
			name:    "NaN fallback scale",
			mutate:  func(c *Config) { c.Typography.GlobalFallbackScale = math.NaN() },
			wantErr: "typography.global_fallback_scale",
		},
		{
			name:    "malformed language id",
			mutate:  func(c *Config) { c.Typography.Languages = []string{"ja", "zh cn"} },
			wantErr: "typography.languages[1]",
		},
		{
			name:    "negative concurrency",
			mutate:  func(c *Config) { c.Fonts.ParseConcurrency = -1 },
			wantErr: "fonts.parse_concurrency",
		},
		{
			name:    "family with css syntax",
			mutate:  func(c *Config) { c.Fonts.SystemFallbacks = []string{"serif; color: red"} },
			wantErr: "fonts.system_fallbacks[0]",
		},
		{
			name:    "quoted url prefix",
			mutate:  func(c *Config) { c.Fonts.URLPrefix = `fonts")` },
			wantErr: "fonts.url_prefix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
