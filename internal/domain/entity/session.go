package entity

import "fmt"

// Typography defaults used by a new session.
const (
	DefaultBaseFontSize   = 16.0
	DefaultBaseLineHeight = 1.5
)

// Session is the editing state of one user: the font stack, its overrides,
// the configured languages and the heading typography. A session has a single
// writer and is passed explicitly to resolvers and exporters.
type Session struct {
	Registry            *FontRegistry
	Overrides           *OverrideStore
	ConfiguredLanguages *LanguageSet
	PrimaryLanguages    *LanguageSet
	HeaderStyles        map[HeadingTag]HeaderStyle
	BaseFontSize        float64 // px
	BaseLineHeight      float64
}

// NewSession creates an empty session with default typography.
func NewSession() *Session {
	return &Session{
		Registry:            NewFontRegistry(),
		Overrides:           NewOverrideStore(),
		ConfiguredLanguages: NewLanguageSet(),
		PrimaryLanguages:    NewLanguageSet(),
		HeaderStyles:        DefaultHeaderStyles(),
		BaseFontSize:        DefaultBaseFontSize,
		BaseLineHeight:      DefaultBaseLineHeight,
	}
}

// EffectivePrimaryLanguages returns the primary languages, or en-US when none
// are configured.
func (s *Session) EffectivePrimaryLanguages() []LanguageID {
	if s.PrimaryLanguages == nil || s.PrimaryLanguages.Len() == 0 {
		return []LanguageID{DefaultPrimaryLanguage}
	}
	return s.PrimaryLanguages.IDs()
}

// IsPrimaryLanguage reports whether lang is an effective primary language.
func (s *Session) IsPrimaryLanguage(lang LanguageID) bool {
	for _, id := range s.EffectivePrimaryLanguages() {
		if id == lang {
			return true
		}
	}
	return false
}

// AddLanguage activates lang. Primary languages are also configured languages.
func (s *Session) AddLanguage(lang LanguageID, primary bool) error {
	if lang == "" {
		return fmt.Errorf("empty language: %w", ErrInvalidValue)
	}
	s.ConfiguredLanguages.Add(lang)
	if primary {
		s.PrimaryLanguages.Add(lang)
	}
	return nil
}

// RemoveLanguage deactivates lang and drops its language-level overrides.
func (s *Session) RemoveLanguage(lang LanguageID) {
	s.ConfiguredLanguages.Remove(lang)
	s.PrimaryLanguages.Remove(lang)
	s.Overrides.ResetForLanguage(lang)
}

// RemoveFont removes a font with its clones and forgets overrides naming them.
func (s *Session) RemoveFont(id FontID) ([]FontID, error) {
	removed, err := s.Registry.Remove(id)
	if err != nil {
		return nil, err
	}
	for _, rid := range removed {
		s.Overrides.ForgetFont(rid)
	}
	return removed, nil
}

// SetHeaderStyle replaces the style of one heading level.
func (s *Session) SetHeaderStyle(tag HeadingTag, style HeaderStyle) error {
	if !IsHeadingTag(tag) {
		return fmt.Errorf("heading tag %q: %w", tag, ErrInvalidValue)
	}
	if err := style.Validate(); err != nil {
		return err
	}
	s.HeaderStyles[tag] = style
	return nil
}

// SetBaseTypography sets the base font size (px) and line height.
func (s *Session) SetBaseTypography(fontSize, lineHeight float64) error {
	if err := checkPositive("base font size", fontSize); err != nil {
		return err
	}
	if err := checkPositive("base line height", lineHeight); err != nil {
		return err
	}
	s.BaseFontSize = fontSize
	s.BaseLineHeight = lineHeight
	return nil
}
