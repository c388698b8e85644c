package entity

import (
	"fmt"
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultGlobalFallbackScale is the scale, in percent, applied to fallback
// fonts without a per-font override.
const DefaultGlobalFallbackScale = 100.0

// LanguageFont is one language → font pin.
type LanguageFont struct {
	Language LanguageID
	FontID   FontID
}

// OverrideSnapshot is a comparable copy of an OverrideStore.
type OverrideSnapshot struct {
	FallbackFonts       []LanguageFont
	PrimaryFonts        []LanguageFont
	LineHeights         map[LanguageID]float64
	GlobalFallbackScale float64
	FontScales          map[FontID]float64
	FontLineHeights     map[FontID]float64
}

// OverrideStore holds the override layers. Language pins keep insertion order,
// which breaks ties when languages are listed. Font ids are not checked against
// any registry: a reference to a removed font simply resolves as no override.
type OverrideStore struct {
	fallbackFonts       *orderedmap.OrderedMap[LanguageID, FontID]
	primaryFonts        *orderedmap.OrderedMap[LanguageID, FontID]
	lineHeights         map[LanguageID]float64
	globalFallbackScale float64
	fontScales          map[FontID]float64
	fontLineHeights     map[FontID]float64
}

// NewOverrideStore creates an empty store with the default global scale.
func NewOverrideStore() *OverrideStore {
	s := &OverrideStore{}
	s.ResetAll()
	return s
}

// ResetAll clears every layer and restores the default global scale.
func (s *OverrideStore) ResetAll() {
	s.fallbackFonts = orderedmap.New[LanguageID, FontID]()
	s.primaryFonts = orderedmap.New[LanguageID, FontID]()
	s.lineHeights = make(map[LanguageID]float64)
	s.globalFallbackScale = DefaultGlobalFallbackScale
	s.fontScales = make(map[FontID]float64)
	s.fontLineHeights = make(map[FontID]float64)
}

// SetFallbackOverride pins the fallback font serving lang. An empty id clears.
func (s *OverrideStore) SetFallbackOverride(lang LanguageID, id FontID) error {
	if lang == "" {
		return fmt.Errorf("fallback override without language: %w", ErrInvalidValue)
	}
	if id == "" {
		s.ClearFallbackOverride(lang)
		return nil
	}
	s.fallbackFonts.Set(lang, id)
	return nil
}

// ClearFallbackOverride removes the fallback pin for lang.
func (s *OverrideStore) ClearFallbackOverride(lang LanguageID) {
	s.fallbackFonts.Delete(lang)
}

// FallbackOverride returns the pinned fallback font for lang.
func (s *OverrideStore) FallbackOverride(lang LanguageID) (FontID, bool) {
	return s.fallbackFonts.Get(lang)
}

// SetPrimaryOverride pins the font replacing the primary for lang. An empty
// id clears.
func (s *OverrideStore) SetPrimaryOverride(lang LanguageID, id FontID) error {
	if lang == "" {
		return fmt.Errorf("primary override without language: %w", ErrInvalidValue)
	}
	if id == "" {
		s.ClearPrimaryOverride(lang)
		return nil
	}
	s.primaryFonts.Set(lang, id)
	return nil
}

// ClearPrimaryOverride removes the primary pin for lang.
func (s *OverrideStore) ClearPrimaryOverride(lang LanguageID) {
	s.primaryFonts.Delete(lang)
}

// PrimaryOverride returns the font replacing the primary for lang.
func (s *OverrideStore) PrimaryOverride(lang LanguageID) (FontID, bool) {
	return s.primaryFonts.Get(lang)
}

// SetLineHeightOverride pins the line height of lang. nil clears.
func (s *OverrideStore) SetLineHeightOverride(lang LanguageID, value *float64) error {
	if lang == "" {
		return fmt.Errorf("line height override without language: %w", ErrInvalidValue)
	}
	if value == nil {
		delete(s.lineHeights, lang)
		return nil
	}
	if err := checkPositive("line height", *value); err != nil {
		return err
	}
	s.lineHeights[lang] = *value
	return nil
}

// LineHeightOverride returns the pinned line height of lang.
func (s *OverrideStore) LineHeightOverride(lang LanguageID) (float64, bool) {
	v, ok := s.lineHeights[lang]
	return v, ok
}

// SetGlobalFallbackScale sets the default fallback scale in percent.
func (s *OverrideStore) SetGlobalFallbackScale(percent float64) error {
	if err := checkPositive("global fallback scale", percent); err != nil {
		return err
	}
	s.globalFallbackScale = percent
	return nil
}

// GlobalFallbackScale returns the default fallback scale in percent.
func (s *OverrideStore) GlobalFallbackScale() float64 {
	return s.globalFallbackScale
}

// SetFontScale sets the scale of one font in percent. nil clears.
func (s *OverrideStore) SetFontScale(id FontID, percent *float64) error {
	if id == "" {
		return fmt.Errorf("font scale without font: %w", ErrInvalidValue)
	}
	if percent == nil {
		delete(s.fontScales, id)
		return nil
	}
	if err := checkPositive("font scale", *percent); err != nil {
		return err
	}
	s.fontScales[id] = *percent
	return nil
}

// FontScale returns the scale override of a font.
func (s *OverrideStore) FontScale(id FontID) (float64, bool) {
	v, ok := s.fontScales[id]
	return v, ok
}

// SetFontLineHeight sets the line height of one font. nil clears.
func (s *OverrideStore) SetFontLineHeight(id FontID, value *float64) error {
	if id == "" {
		return fmt.Errorf("font line height without font: %w", ErrInvalidValue)
	}
	if value == nil {
		delete(s.fontLineHeights, id)
		return nil
	}
	if err := checkPositive("font line height", *value); err != nil {
		return err
	}
	s.fontLineHeights[id] = *value
	return nil
}

// FontLineHeight returns the line height override of a font.
func (s *OverrideStore) FontLineHeight(id FontID) (float64, bool) {
	v, ok := s.fontLineHeights[id]
	return v, ok
}

// ResetForFont clears the font-level layer of id.
func (s *OverrideStore) ResetForFont(id FontID) {
	delete(s.fontScales, id)
	delete(s.fontLineHeights, id)
}

// ResetForLanguage clears every language-level layer of lang.
func (s *OverrideStore) ResetForLanguage(lang LanguageID) {
	s.fallbackFonts.Delete(lang)
	s.primaryFonts.Delete(lang)
	delete(s.lineHeights, lang)
}

// ForgetFont clears the font layer of id and every language pin naming it.
func (s *OverrideStore) ForgetFont(id FontID) {
	s.ResetForFont(id)
	for _, lang := range languagesFor(s.fallbackFonts, id) {
		s.fallbackFonts.Delete(lang)
	}
	for _, lang := range languagesFor(s.primaryFonts, id) {
		s.primaryFonts.Delete(lang)
	}
}

// FallbackOverrides lists fallback pins in insertion order.
func (s *OverrideStore) FallbackOverrides() []LanguageFont {
	return pairs(s.fallbackFonts)
}

// PrimaryOverrides lists primary pins in insertion order.
func (s *OverrideStore) PrimaryOverrides() []LanguageFont {
	return pairs(s.primaryFonts)
}

// LineHeightOverrides returns a copy of the language line heights.
func (s *OverrideStore) LineHeightOverrides() map[LanguageID]float64 {
	out := make(map[LanguageID]float64, len(s.lineHeights))
	for k, v := range s.lineHeights {
		out[k] = v
	}
	return out
}

// LanguagesPinnedTo lists, in insertion order, languages whose fallback pin
// names id.
func (s *OverrideStore) LanguagesPinnedTo(id FontID) []LanguageID {
	return languagesFor(s.fallbackFonts, id)
}

// LanguagesReplacingPrimaryWith lists, in insertion order, languages whose
// primary pin names id.
func (s *OverrideStore) LanguagesReplacingPrimaryWith(id FontID) []LanguageID {
	return languagesFor(s.primaryFonts, id)
}

// Snapshot returns a comparable copy of the store.
func (s *OverrideStore) Snapshot() OverrideSnapshot {
	scales := make(map[FontID]float64, len(s.fontScales))
	for k, v := range s.fontScales {
		scales[k] = v
	}
	lineHeights := make(map[FontID]float64, len(s.fontLineHeights))
	for k, v := range s.fontLineHeights {
		lineHeights[k] = v
	}
	return OverrideSnapshot{
		FallbackFonts:       s.FallbackOverrides(),
		PrimaryFonts:        s.PrimaryOverrides(),
		LineHeights:         s.LineHeightOverrides(),
		GlobalFallbackScale: s.globalFallbackScale,
		FontScales:          scales,
		FontLineHeights:     lineHeights,
	}
}

func pairs(m *orderedmap.OrderedMap[LanguageID, FontID]) []LanguageFont {
	out := make([]LanguageFont, 0, m.Len())
	for p := m.Oldest(); p != nil; p = p.Next() {
		out = append(out, LanguageFont{Language: p.Key, FontID: p.Value})
	}
	return out
}

func languagesFor(m *orderedmap.OrderedMap[LanguageID, FontID], id FontID) []LanguageID {
	var out []LanguageID
	for p := m.Oldest(); p != nil; p = p.Next() {
		if p.Value == id {
			out = append(out, p.Key)
		}
	}
	return out
}

func checkPositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s %v must be a positive number: %w", field, v, ErrInvalidValue)
	}
	return nil
}
