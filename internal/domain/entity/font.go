package entity

import (
	"path/filepath"
	"strings"
)

// FontID identifies a stack entry. IDs are assigned by the registry and never reused.
type FontID string

// FontRole is the position class of a font in the stack.
type FontRole string

const (
	RolePrimary  FontRole = "primary"
	RoleFallback FontRole = "fallback"
)

// WeightAxis describes the wght axis of a variable font.
type WeightAxis struct {
	Min     float64
	Max     float64
	Default float64
}

// FontMetadata is what the parsing collaborator extracts from a font binary.
type FontMetadata struct {
	FamilyName   string
	GlyphCount   int
	WeightAxis   *WeightAxis // nil for static fonts
	StaticWeight *int        // usWeightClass, nil when unknown
}

// IsVariable reports whether the font exposes a weight axis.
func (m *FontMetadata) IsVariable() bool {
	return m != nil && m.WeightAxis != nil
}

// SourceKind discriminates the FontSource variants.
type SourceKind string

const (
	SourceUploaded SourceKind = "uploaded"
	SourceSystem   SourceKind = "system"
)

// FontSource is where a font's glyphs come from. It is either an UploadedSource
// or a SystemSource.
type FontSource interface {
	Kind() SourceKind
}

// UploadedSource is a font backed by a user supplied file. A nil Metadata marks a
// ghost: the file was declared (for example by an imported config) but its
// binary has not been loaded yet.
type UploadedSource struct {
	FileName string
	URL      string
	Metadata *FontMetadata
}

// Kind implements FontSource.
func (UploadedSource) Kind() SourceKind { return SourceUploaded }

// SystemSource is a name-only font resolved by the rendering environment.
type SystemSource struct{}

// Kind implements FontSource.
func (SystemSource) Kind() SourceKind { return SourceSystem }

// Font is one entry of the font stack.
type Font struct {
	ID     FontID
	Role   FontRole
	Name   string
	Source FontSource

	// IsLanguageSpecific entries only serve pinned languages and are hidden
	// from the general fallback pool.
	IsLanguageSpecific bool
	// IsPrimaryOverride entries replace the primary font for specific languages.
	IsPrimaryOverride bool
}

// IsSystem reports whether the font is a name-only system font.
func (f *Font) IsSystem() bool {
	return f.Source == nil || f.Source.Kind() == SourceSystem
}

// IsUploaded reports whether the font is backed by a file.
func (f *Font) IsUploaded() bool {
	return !f.IsSystem()
}

// Uploaded returns the uploaded source, or false for system fonts.
func (f *Font) Uploaded() (UploadedSource, bool) {
	src, ok := f.Source.(UploadedSource)
	return src, ok
}

// FileName returns the uploaded file name, or "" for system fonts.
func (f *Font) FileName() string {
	src, ok := f.Uploaded()
	if !ok {
		return ""
	}
	return src.FileName
}

// URL returns the uploaded file URL, or "".
func (f *Font) URL() string {
	src, ok := f.Uploaded()
	if !ok {
		return ""
	}
	return src.URL
}

// Metadata returns the parsed metadata, or nil for system fonts and ghosts.
func (f *Font) Metadata() *FontMetadata {
	src, ok := f.Uploaded()
	if !ok {
		return nil
	}
	return src.Metadata
}

// HasGlyphData reports whether the font binary has been loaded.
func (f *Font) HasGlyphData() bool {
	return f.Metadata() != nil
}

// IsGhost reports whether the font is a declared file without loaded glyph data.
func (f *Font) IsGhost() bool {
	return f.IsUploaded() && !f.HasGlyphData()
}

// IsVariable reports whether the font has a weight axis.
func (f *Font) IsVariable() bool {
	return f.Metadata().IsVariable()
}

// IsGeneric reports whether the font is an ordinary stack entry rather than a
// language clone.
func (f *Font) IsGeneric() bool {
	return !f.IsLanguageSpecific && !f.IsPrimaryOverride
}

// NormalizedName returns the comparable form of the display name.
func (f *Font) NormalizedName() string {
	return NormalizeFontName(f.Name)
}

// IdentityKey is the key used for uniqueness and deduplication: the file name
// for uploaded fonts, the normalized display name for system fonts.
func (f *Font) IdentityKey() string {
	if name := f.FileName(); name != "" {
		return FileKey(name)
	}
	return NormalizeFontName(f.Name)
}

// Clone returns a copy of the font. Sources are values so the copy is deep
// except for the shared metadata pointer, which is never mutated in place.
func (f *Font) Clone() *Font {
	c := *f
	return &c
}

var fontExtensions = map[string]struct{}{
	".ttf":   {},
	".otf":   {},
	".woff":  {},
	".woff2": {},
	".ttc":   {},
}

// FileKey compares file names case-insensitively and without a font extension.
func FileKey(fileName string) string {
	return strings.ToLower(stripFontExt(filepath.Base(strings.TrimSpace(fileName))))
}

// NormalizeFontName folds a font or file name into a comparable key:
// lowercase, no font extension, no spaces, hyphens or underscores.
func NormalizeFontName(name string) string {
	key := strings.ToLower(stripFontExt(strings.TrimSpace(name)))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}
		return r
	}, key)
}

func stripFontExt(name string) string {
	ext := filepath.Ext(name)
	if _, ok := fontExtensions[strings.ToLower(ext)]; ok {
		return strings.TrimSuffix(name, ext)
	}
	return name
}

// IsFontFile reports whether name carries a known font file extension.
func IsFontFile(name string) bool {
	_, ok := fontExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// genericFamilies are CSS generic and system alias families, normalized.
var genericFamilies = map[string]struct{}{
	"serif":              {},
	"sansserif":          {},
	"monospace":          {},
	"cursive":            {},
	"fantasy":            {},
	"systemui":           {},
	"uiserif":            {},
	"uisansserif":        {},
	"uimonospace":        {},
	"uirounded":          {},
	"emoji":              {},
	"math":               {},
	"fangsong":           {},
	"applesystem":        {},
	"blinkmacsystemfont": {},
}

// IsGenericFamily reports whether name is a CSS generic family such as
// "sans-serif" or "system-ui". Generic families are never quoted in CSS.
func IsGenericFamily(name string) bool {
	_, ok := genericFamilies[NormalizeFontName(name)]
	return ok
}
