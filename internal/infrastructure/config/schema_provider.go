package config

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/bnema/fontstack/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLogging    = "Logging"
	SectionTypography = "Typography"
	SectionExport     = "Export"
	SectionDatabase   = "Database"
	SectionFonts      = "Fonts"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 20)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getTypographyKeys(defaults)...)
	keys = append(keys, p.getExportKeys(defaults)...)
	keys = append(keys, p.getDatabaseKeys()...)
	keys = append(keys, p.getFontsKeys(defaults)...)
	return keys
}

// JSONSchema returns the JSON Schema of config.toml, keyed by TOML names.
func (*SchemaProvider) JSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "toml",
		DoNotReference: true,
	}
	schema := r.Reflect(&Config{})
	schema.Title = "fontstack configuration"
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode config schema: %w", err)
	}
	return data, nil
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      slices.Clone(validLogLevels),
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      slices.Clone(validLogFormats),
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getTypographyKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "typography.base_font_size",
			Type:        "float64",
			Default:     formatFloat(defaults.Typography.BaseFontSize),
			Description: "Base font size in pixels for new sessions",
			Range:       ">0",
			Section:     SectionTypography,
		},
		{
			Key:         "typography.base_line_height",
			Type:        "float64",
			Default:     formatFloat(defaults.Typography.BaseLineHeight),
			Description: "Base unitless line height for new sessions",
			Range:       ">0",
			Section:     SectionTypography,
		},
		{
			Key:         "typography.global_fallback_scale",
			Type:        "float64",
			Default:     formatFloat(defaults.Typography.GlobalFallbackScale),
			Description: "Default size-adjust percentage for fallback fonts",
			Range:       ">0",
			Section:     SectionTypography,
		},
		{
			Key:         "typography.primary_languages",
			Type:        "[]string",
			Default:     formatList(defaults.Typography.PrimaryLanguages),
			Description: "Languages rendered with the primary font (en-US when empty)",
			Section:     SectionTypography,
		},
		{
			Key:         "typography.languages",
			Type:        "[]string",
			Default:     formatList(defaults.Typography.Languages),
			Description: "Languages configured in new sessions",
			Section:     SectionTypography,
		},
	}
}

func (*SchemaProvider) getExportKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "export.include_font_face",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Export.IncludeFontFace),
			Description: "Emit @font-face rules for uploaded fonts",
			Section:     SectionExport,
		},
		{
			Key:         "export.use_css_variables",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Export.UseCSSVariables),
			Description: "Emit :root custom properties and reference them",
			Section:     SectionExport,
		},
		{
			Key:         "export.include_comments",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Export.IncludeComments),
			Description: "Emit section comments",
			Section:     SectionExport,
		},
		{
			Key:         "export.pretty_print",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Export.PrettyPrint),
			Description: "Indent and separate rules",
			Section:     SectionExport,
		},
	}
}

func (*SchemaProvider) getDatabaseKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     "$XDG_DATA_HOME/fontstack/" + databaseName,
			Description: "SQLite file holding saved profiles",
			Section:     SectionDatabase,
		},
	}
}

func (*SchemaProvider) getFontsKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "fonts.directory",
			Type:        "string",
			Default:     defaults.Fonts.Directory,
			Description: "Directory scanned for font files",
			Section:     SectionFonts,
		},
		{
			Key:         "fonts.parse_concurrency",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Fonts.ParseConcurrency),
			Description: "Parallel font parsers (0 uses GOMAXPROCS)",
			Range:       fmt.Sprintf("0-%d", maxParseConcurrency),
			Section:     SectionFonts,
		},
		{
			Key:         "fonts.url_prefix",
			Type:        "string",
			Default:     defaults.Fonts.URLPrefix,
			Description: "Path prefix for @font-face src URLs",
			Section:     SectionFonts,
		},
		{
			Key:         "fonts.system_fallbacks",
			Type:        "[]string",
			Default:     formatList(defaults.Fonts.SystemFallbacks),
			Description: "System families appended to new sessions",
			Section:     SectionFonts,
		},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatList(values []string) string {
	return "[" + strings.Join(values, ", ") + "]"
}
