// Package service holds the pure font-stack computations: per-language
// resolution, grouping for display and the snapshot consumed by exporters.
package service

import (
	"github.com/bnema/fontstack/internal/domain/entity"
)

// ResolutionSource explains which rule picked the font of a language.
type ResolutionSource string

const (
	SourceNone             ResolutionSource = "none"
	SourcePrimaryOverride  ResolutionSource = "primary-override"
	SourcePrimary          ResolutionSource = "primary"
	SourceLanguageOverride ResolutionSource = "language-override"
	SourceAutoFallback     ResolutionSource = "auto-fallback"
	SourcePrimaryDefault   ResolutionSource = "primary-default"
)

// PrimaryScalePercent is the scale of the primary font. It is never adjusted.
const PrimaryScalePercent = 100.0

// Resolution is the effective typography of one language.
type Resolution struct {
	Language     entity.LanguageID
	FontID       entity.FontID
	Font         *entity.Font
	ScalePercent float64
	LineHeight   float64
	Source       ResolutionSource
}

// IsPinned reports whether an explicit language pin selected the font.
func (r Resolution) IsPinned() bool {
	return r.Source == SourcePrimaryOverride || r.Source == SourceLanguageOverride
}

// ResolveForLanguage computes the font, scale and line height of lang.
//
// Rules, first match wins:
//  1. primary language with a live primary pin: the pinned font
//  2. primary language: the primary font
//  3. live fallback pin: the pinned font
//  4. first generic fallback not named like the primary, else the primary
//
// References to removed fonts are skipped; resolution never fails.
func ResolveForLanguage(s *entity.Session, lang entity.LanguageID) Resolution {
	res := Resolution{Language: lang, Source: SourceNone}
	reg, ov := s.Registry, s.Overrides

	primary := reg.Primary()
	if primary == nil {
		res.LineHeight = lineHeightFor(s, lang, "")
		return res
	}

	var font *entity.Font
	if s.IsPrimaryLanguage(lang) {
		if id, ok := ov.PrimaryOverride(lang); ok {
			if f, live := reg.Get(id); live {
				font, res.Source = f, SourcePrimaryOverride
			}
		}
		if font == nil {
			font, res.Source = primary, SourcePrimary
		}
	} else {
		if id, ok := ov.FallbackOverride(lang); ok {
			if f, live := reg.Get(id); live {
				font, res.Source = f, SourceLanguageOverride
			}
		}
		if font == nil {
			if f := AutoFallback(reg); f != nil {
				font, res.Source = f, SourceAutoFallback
			} else {
				font, res.Source = primary, SourcePrimaryDefault
			}
		}
	}

	res.Font = font
	res.FontID = font.ID
	res.ScalePercent = ScaleFor(ov, font)
	res.LineHeight = lineHeightFor(s, lang, font.ID)
	return res
}

// AutoFallback returns the first fallback eligible for automatic mapping:
// generic, and not the primary under another entry.
func AutoFallback(reg *entity.FontRegistry) *entity.Font {
	primary := reg.Primary()
	if primary == nil {
		return nil
	}
	for _, f := range reg.Fonts() {
		if f.Role != entity.RoleFallback || !f.IsGeneric() {
			continue
		}
		if f.NormalizedName() == primary.NormalizedName() {
			continue
		}
		return f
	}
	return nil
}

// ScaleFor returns the scale of a registry entry: 100 for the primary, else
// its own scale override, else the global fallback scale.
func ScaleFor(ov *entity.OverrideStore, f *entity.Font) float64 {
	if f.Role == entity.RolePrimary {
		return PrimaryScalePercent
	}
	if v, ok := ov.FontScale(f.ID); ok {
		return v
	}
	return ov.GlobalFallbackScale()
}

func lineHeightFor(s *entity.Session, lang entity.LanguageID, id entity.FontID) float64 {
	if v, ok := s.Overrides.LineHeightOverride(lang); ok {
		return v
	}
	if id != "" {
		if v, ok := s.Overrides.FontLineHeight(id); ok {
			return v
		}
	}
	return s.BaseLineHeight
}
