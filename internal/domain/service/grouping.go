package service

import (
	"math"
	"slices"

	"github.com/bnema/fontstack/internal/domain/entity"
)

// LanguageLookup resolves catalog metadata of a language.
type LanguageLookup interface {
	Lookup(id entity.LanguageID) (entity.Language, bool)
}

// LanguageGroup is a font with the languages it serves.
type LanguageGroup struct {
	Font        *entity.Font
	LanguageIDs []entity.LanguageID
}

// Grouping is the stack split into display buckets.
type Grouping struct {
	Primary             *entity.Font
	GlobalFallbackFonts []*entity.Font
	SystemFonts         []*entity.Font
	PrimaryOverrides    []LanguageGroup
	LanguageSpecific    []LanguageGroup
}

// GroupAndSort partitions the fallback entries of the session:
//   - entries pinned as a primary replacement, or flagged as one, go to
//     PrimaryOverrides with their languages
//   - language-specific entries go to LanguageSpecific
//   - name-only entries go to SystemFonts
//   - uploaded entries that are the primary under another name are dropped
//   - the rest form GlobalFallbackFonts
//
// An entry flagged IsPrimaryOverride never lands in GlobalFallbackFonts.
func GroupAndSort(s *entity.Session, catalog LanguageLookup) Grouping {
	reg, ov := s.Registry, s.Overrides
	g := Grouping{Primary: reg.Primary()}

	for _, f := range reg.Fonts() {
		if f.Role != entity.RoleFallback {
			continue
		}

		if langs := ov.LanguagesReplacingPrimaryWith(f.ID); len(langs) > 0 || f.IsPrimaryOverride {
			g.PrimaryOverrides = append(g.PrimaryOverrides, LanguageGroup{
				Font:        f,
				LanguageIDs: SortLanguages(langs, catalog),
			})
			continue
		}

		switch {
		case f.IsLanguageSpecific:
			g.LanguageSpecific = append(g.LanguageSpecific, LanguageGroup{
				Font:        f,
				LanguageIDs: SortLanguages(ov.LanguagesPinnedTo(f.ID), catalog),
			})
		case f.IsSystem():
			g.SystemFonts = append(g.SystemFonts, f)
		case g.Primary != nil && isSameFace(f, g.Primary):
			// shown once, as the primary
		default:
			g.GlobalFallbackFonts = append(g.GlobalFallbackFonts, f)
		}
	}
	return g
}

// SortLanguages orders ids by catalog position. Ids unknown to the catalog go
// last; ties keep the input order.
func SortLanguages(ids []entity.LanguageID, catalog LanguageLookup) []entity.LanguageID {
	out := make([]entity.LanguageID, len(ids))
	copy(out, ids)
	slices.SortStableFunc(out, func(a, b entity.LanguageID) int {
		return canonicalIndex(catalog, a) - canonicalIndex(catalog, b)
	})
	return out
}

func canonicalIndex(catalog LanguageLookup, id entity.LanguageID) int {
	if catalog != nil {
		if lang, ok := catalog.Lookup(id); ok {
			return lang.CanonicalIndex
		}
	}
	return math.MaxInt32
}

// isSameFace reports whether f is the primary font under another entry.
func isSameFace(f, primary *entity.Font) bool {
	if f.NormalizedName() == primary.NormalizedName() {
		return true
	}
	return f.IsUploaded() && primary.IsUploaded() && f.IdentityKey() == primary.IdentityKey()
}
