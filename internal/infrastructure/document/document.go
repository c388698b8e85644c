// Package document converts a session to and from its portable JSON
// configuration document.
package document

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Version is the document format written by Export. Documents with another
// major version are rejected.
const Version = "1.0.0"

// Document is the {metadata, data} envelope.
type Document struct {
	Metadata Metadata `json:"metadata"`
	Data     Data     `json:"data"`
}

// Metadata versions a document.
type Metadata struct {
	Version   string `json:"version" jsonschema:"required,pattern=^[0-9]+(\\.[0-9]+)*$"`
	Timestamp string `json:"timestamp" jsonschema:"format=date-time"`
}

// Data is the session content.
type Data struct {
	FontStyles          FontStyles             `json:"fontStyles"`
	ConfiguredLanguages []string               `json:"configuredLanguages"`
	PrimaryLanguages    []string               `json:"primaryLanguages"`
	HeaderStyles        map[string]HeaderStyle `json:"headerStyles"`
}

// LanguageFonts maps language ids to font refs, in insertion order.
type LanguageFonts = orderedmap.OrderedMap[string, string]

// FontStyles is the font stack with its override layers.
type FontStyles struct {
	Fonts                 []FontEntry        `json:"fonts"`
	BaseFontSize          float64            `json:"baseFontSize" jsonschema:"exclusiveMinimum=0"`
	LineHeight            float64            `json:"lineHeight" jsonschema:"exclusiveMinimum=0"`
	GlobalFallbackScale   float64            `json:"globalFallbackScale" jsonschema:"exclusiveMinimum=0"`
	FallbackFontOverrides *LanguageFonts     `json:"fallbackFontOverrides,omitempty"`
	PrimaryFontOverrides  *LanguageFonts     `json:"primaryFontOverrides,omitempty"`
	LineHeightOverrides   map[string]float64 `json:"lineHeightOverrides,omitempty"`
}

// FontEntry declares one stack entry. Uploaded entries are identified by
// FileName; binaries are never embedded.
type FontEntry struct {
	Ref                string   `json:"ref" jsonschema:"required"`
	Name               string   `json:"name" jsonschema:"required"`
	FileName           string   `json:"fileName,omitempty"`
	System             bool     `json:"system,omitempty"`
	Role               string   `json:"role" jsonschema:"enum=primary,enum=fallback"`
	IsLanguageSpecific bool     `json:"isLanguageSpecific,omitempty"`
	IsPrimaryOverride  bool     `json:"isPrimaryOverride,omitempty"`
	ScaleOverride      *float64 `json:"scaleOverride,omitempty"`
	LineHeightOverride *float64 `json:"lineHeightOverride,omitempty"`
}

// HeaderStyle is the typography of one heading level.
type HeaderStyle struct {
	Scale        float64 `json:"scale" jsonschema:"exclusiveMinimum=0"`
	LineHeight   float64 `json:"lineHeight" jsonschema:"exclusiveMinimum=0"`
	AssignedRole string  `json:"assignedRole" jsonschema:"enum=primary,enum=secondary"`
}
