package config

import (
	"fmt"
	"slices"
	"strings"

	domainvalidation "github.com/bnema/fontstack/internal/domain/validation"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal"}
	validLogFormats = []string{"console", "json"}
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateTypography(config)...)
	validationErrors = append(validationErrors, validateFonts(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.Level != "" && !slices.Contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of %s (got: %s)", strings.Join(validLogLevels, ", "), config.Logging.Level,
		))
	}
	if !slices.Contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	return validationErrors
}

func validateTypography(config *Config) []string {
	t := config.Typography
	var validationErrors []string
	validationErrors = append(validationErrors, domainvalidation.ValidatePositive("typography.base_font_size", t.BaseFontSize)...)
	validationErrors = append(validationErrors, domainvalidation.ValidatePositive("typography.base_line_height", t.BaseLineHeight)...)
	validationErrors = append(
		validationErrors,
		domainvalidation.ValidatePositive("typography.global_fallback_scale", t.GlobalFallbackScale)...,
	)
	validationErrors = append(validationErrors, domainvalidation.ValidateLanguageIDs("typography.primary_languages", t.PrimaryLanguages)...)
	validationErrors = append(validationErrors, domainvalidation.ValidateLanguageIDs("typography.languages", t.Languages)...)
	return validationErrors
}

func validateFonts(config *Config) []string {
	var validationErrors []string
	validationErrors = append(validationErrors, domainvalidation.ValidateIntRange(
		"fonts.parse_concurrency", config.Fonts.ParseConcurrency, 0, maxParseConcurrency,
	)...)
	validationErrors = append(
		validationErrors,
		domainvalidation.ValidateFontFamilies("fonts.system_fallbacks", config.Fonts.SystemFallbacks)...,
	)
	if strings.ContainsAny(config.Fonts.URLPrefix, "\"'()\n") {
		validationErrors = append(validationErrors, "fonts.url_prefix cannot contain quotes, parentheses or newlines")
	}
	return validationErrors
}
