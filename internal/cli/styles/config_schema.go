package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fontstack/internal/domain/entity"
)

// ConfigSchemaRenderer renders the configuration keys.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders one table per section, sections in first-seen order.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	var order []string
	bySection := make(map[string][]entity.ConfigKeyInfo)
	for _, key := range keys {
		if _, ok := bySection[key.Section]; !ok {
			order = append(order, key.Section)
		}
		bySection[key.Section] = append(bySection[key.Section], key)
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconConfig)
	parts := []string{icon + " " + r.theme.Title.Render("Configuration keys")}
	for _, section := range order {
		t := NewTable(r.theme, "Key", "Type", "Default", "Allowed", "Description")
		for _, key := range bySection[section] {
			t.Row(key.Key, key.Type, key.Default, allowed(key), key.Description)
		}
		parts = append(parts, "", r.theme.Highlight.Render(section), t.Render())
	}
	return strings.Join(parts, "\n")
}

// RenderJSON renders the keys as indented JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal config keys: %w", err)
	}
	return string(data), nil
}

func allowed(key entity.ConfigKeyInfo) string {
	switch {
	case len(key.Values) > 0:
		return strings.Join(key.Values, ", ")
	case key.Range != "":
		return key.Range
	default:
		return "-"
	}
}
