package entity

// ConfigKeyInfo documents one configuration key.
type ConfigKeyInfo struct {
	// Dotted path, e.g. "typography.base_font_size"
	Key string `json:"key"`

	Type    string `json:"type"`
	Default string `json:"default"`

	Description string `json:"description"`

	// Allowed values of string enums
	Values []string `json:"values,omitempty"`

	// Numeric bounds such as "0-256"
	Range string `json:"range,omitempty"`

	Section string `json:"section"`
}
