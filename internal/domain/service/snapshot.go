package service

import (
	"strconv"

	"github.com/bnema/fontstack/internal/domain/entity"
)

// FontFace is one loadable face of the stack.
type FontFace struct {
	Font         *entity.Font
	Family       string
	ScalePercent float64
}

// HeaderRule is the typography of a heading level with its resolved font.
type HeaderRule struct {
	Tag    entity.HeadingTag
	Style  entity.HeaderStyle
	Family string
}

// ResolvedSnapshot is everything an exporter needs, precomputed in a stable
// order.
type ResolvedSnapshot struct {
	Primary             *entity.Font
	PrimaryFamily       string
	Secondary           *entity.Font
	SecondaryFamily     string
	Faces               []FontFace
	Stack               []string // font-family list, primary first
	Headers             []HeaderRule
	Resolutions         map[entity.LanguageID]Resolution
	BaseFontSize        float64
	BaseLineHeight      float64
	GlobalFallbackScale float64

	families map[entity.FontID]string
}

// FamilyOf returns the CSS family name serving a registry entry. Hidden clones
// share the family of their canonical twin.
func (s ResolvedSnapshot) FamilyOf(id entity.FontID) string {
	return s.families[id]
}

// Snapshot resolves the whole session for export.
func Snapshot(s *entity.Session, catalog LanguageLookup) ResolvedSnapshot {
	view := VisibleFonts(s, catalog)
	grouping := GroupAndSort(s, catalog)

	snap := ResolvedSnapshot{
		Primary:             grouping.Primary,
		Resolutions:         make(map[entity.LanguageID]Resolution),
		BaseFontSize:        s.BaseFontSize,
		BaseLineHeight:      s.BaseLineHeight,
		GlobalFallbackScale: s.Overrides.GlobalFallbackScale(),
		families:            make(map[entity.FontID]string),
	}

	used := make(map[string]int)
	canonical := make(map[string]FontFace)
	for _, f := range view.Visible {
		face := FontFace{
			Font:         f,
			Family:       uniqueFamily(f.Name, used),
			ScalePercent: ScaleFor(s.Overrides, f),
		}
		snap.families[f.ID] = face.Family
		if f.IsGeneric() {
			canonical[identityOf(f)] = face
		}
		if hasFace(f) {
			snap.Faces = append(snap.Faces, face)
		}
	}
	for _, f := range s.Registry.Fonts() {
		if _, ok := snap.families[f.ID]; ok {
			continue
		}
		twin, ok := canonical[identityOf(f)]
		if !ok {
			snap.families[f.ID] = f.Name
			continue
		}
		// A hidden clone scaled differently from its twin needs its own face.
		scale := ScaleFor(s.Overrides, f)
		if scale == twin.ScalePercent || !hasFace(f) {
			snap.families[f.ID] = twin.Family
			continue
		}
		face := FontFace{Font: f, Family: uniqueFamily(f.Name, used), ScalePercent: scale}
		snap.families[f.ID] = face.Family
		snap.Faces = append(snap.Faces, face)
	}

	if snap.Primary != nil {
		snap.PrimaryFamily = snap.families[snap.Primary.ID]
		snap.Stack = append(snap.Stack, snap.PrimaryFamily)
	}
	for _, f := range grouping.GlobalFallbackFonts {
		snap.Stack = appendFamily(snap.Stack, snap.families[f.ID])
	}
	for _, f := range grouping.SystemFonts {
		snap.Stack = appendFamily(snap.Stack, f.Name)
	}

	if secondary := AutoFallback(s.Registry); secondary != nil {
		snap.Secondary = secondary
		snap.SecondaryFamily = snap.families[secondary.ID]
	}

	for _, tag := range entity.HeadingTags() {
		style, ok := s.HeaderStyles[tag]
		if !ok {
			continue
		}
		family := snap.PrimaryFamily
		if style.AssignedRole == entity.HeaderRoleSecondary && snap.SecondaryFamily != "" {
			family = snap.SecondaryFamily
		}
		snap.Headers = append(snap.Headers, HeaderRule{Tag: tag, Style: style, Family: family})
	}

	for _, lang := range s.ConfiguredLanguages.IDs() {
		snap.Resolutions[lang] = ResolveForLanguage(s, lang)
	}
	for _, lang := range s.EffectivePrimaryLanguages() {
		if _, ok := snap.Resolutions[lang]; !ok {
			snap.Resolutions[lang] = ResolveForLanguage(s, lang)
		}
	}
	return snap
}

// InheritsDefault reports whether a language renders with the body rule: the
// stack's default font for its class and the base line height.
func (s ResolvedSnapshot) InheritsDefault(r Resolution) bool {
	return !r.IsPinned() && r.LineHeight == s.BaseLineHeight
}

func hasFace(f *entity.Font) bool {
	return f.IsUploaded() && f.FileName() != "" && f.URL() != ""
}

func uniqueFamily(name string, used map[string]int) string {
	key := entity.NormalizeFontName(name)
	used[key]++
	if n := used[key]; n > 1 {
		return name + " " + strconv.Itoa(n)
	}
	return name
}

func appendFamily(stack []string, family string) []string {
	if family == "" {
		return stack
	}
	for _, f := range stack {
		if f == family {
			return stack
		}
	}
	return append(stack, family)
}
