package config

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaProvider_GetSchema(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()

	require.NotEmpty(t, keys)
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k.Key], "duplicate key %s", k.Key)
		seen[k.Key] = true
		assert.NotEmpty(t, k.Section, k.Key)
		assert.NotEmpty(t, k.Description, k.Key)
		section := strings.SplitN(k.Key, ".", 2)[0]
		assert.Equal(t, strings.ToLower(k.Section), section, k.Key)
	}
	for _, key := range []string{"logging.level", "typography.base_font_size", "export.pretty_print", "database.path", "fonts.parse_concurrency"} {
		assert.True(t, seen[key], key)
	}
}

func TestSchemaProvider_Defaults(t *testing.T) {
	byKey := make(map[string]string)
	for _, k := range NewSchemaProvider().GetSchema() {
		byKey[k.Key] = k.Default
	}

	assert.Equal(t, "16", byKey["typography.base_font_size"])
	assert.Equal(t, "1.5", byKey["typography.base_line_height"])
	assert.Equal(t, "true", byKey["export.include_font_face"])
	assert.Equal(t, "[]", byKey["typography.primary_languages"])
}

func TestSchemaProvider_JSONSchemaUsesTOMLNames(t *testing.T) {
	data, err := NewSchemaProvider().JSONSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "typography")
	typography := props["typography"].(map[string]any)["properties"].(map[string]any)
	assert.Contains(t, typography, "base_font_size")
}
