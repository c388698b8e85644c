package service

import (
	"github.com/bnema/fontstack/internal/domain/entity"
)

// DedupView is the font-manager list: one visible entry per physical font,
// with the language mappings of hidden clones folded into it.
type DedupView struct {
	Visible []*entity.Font

	byID   map[entity.FontID][]entity.LanguageID
	byFile map[string][]entity.LanguageID
	byName map[string][]entity.LanguageID
}

// LanguagesFor returns the languages mapped to f or to any hidden clone of
// it. Lookup goes by id, then file key, then normalized name.
func (v DedupView) LanguagesFor(f *entity.Font) []entity.LanguageID {
	if langs, ok := v.byID[f.ID]; ok {
		return langs
	}
	if name := f.FileName(); name != "" {
		if langs, ok := v.byFile[entity.FileKey(name)]; ok {
			return langs
		}
	}
	return v.byName[f.NormalizedName()]
}

// LanguagesForFile returns the languages mapped to any entry of a file.
func (v DedupView) LanguagesForFile(fileName string) []entity.LanguageID {
	return v.byFile[entity.FileKey(fileName)]
}

// LanguagesForName returns the languages mapped to any entry with that name.
func (v DedupView) LanguagesForName(name string) []entity.LanguageID {
	return v.byName[entity.NormalizeFontName(name)]
}

type identityGroup struct {
	members  []*entity.Font
	visible  map[entity.FontID]bool
	combined []entity.LanguageID
}

// VisibleFonts builds the deduplicated font list. When a physical font (same
// file, else same normalized name) has a generic entry, its language clones
// are hidden and the first generic entry by stack order is canonical.
// Without a generic twin every clone stays visible.
func VisibleFonts(s *entity.Session, catalog LanguageLookup) DedupView {
	fonts := s.Registry.Fonts()
	ov := s.Overrides

	groups := make(map[string]*identityGroup)
	order := make([]string, 0)
	for _, f := range fonts {
		key := identityOf(f)
		g, ok := groups[key]
		if !ok {
			g = &identityGroup{visible: make(map[entity.FontID]bool)}
			groups[key] = g
			order = append(order, key)
		}
		g.members = append(g.members, f)
	}

	view := DedupView{
		byID:   make(map[entity.FontID][]entity.LanguageID),
		byFile: make(map[string][]entity.LanguageID),
		byName: make(map[string][]entity.LanguageID),
	}

	for _, key := range order {
		g := groups[key]
		var canonical *entity.Font
		for _, f := range g.members {
			if f.IsGeneric() {
				canonical = f
				break
			}
		}

		seen := make(map[entity.LanguageID]bool)
		for _, f := range g.members {
			own := mappedLanguages(ov, f.ID)
			for _, lang := range own {
				if !seen[lang] {
					seen[lang] = true
					g.combined = append(g.combined, lang)
				}
			}
			if canonical == nil {
				g.visible[f.ID] = true
				view.byID[f.ID] = SortLanguages(own, catalog)
			}
		}
		g.combined = SortLanguages(g.combined, catalog)

		if canonical != nil {
			g.visible[canonical.ID] = true
			view.byID[canonical.ID] = g.combined
		}
		for _, f := range g.members {
			if name := f.FileName(); name != "" {
				view.byFile[entity.FileKey(name)] = g.combined
			}
			view.byName[f.NormalizedName()] = g.combined
		}
	}

	for _, f := range fonts {
		if groups[identityOf(f)].visible[f.ID] {
			view.Visible = append(view.Visible, f)
		}
	}
	return view
}

func identityOf(f *entity.Font) string {
	if f.IsSystem() {
		return "system:" + f.IdentityKey()
	}
	return "file:" + f.IdentityKey()
}

func mappedLanguages(ov *entity.OverrideStore, id entity.FontID) []entity.LanguageID {
	langs := ov.LanguagesPinnedTo(id)
	for _, lang := range ov.LanguagesReplacingPrimaryWith(id) {
		if !containsLanguage(langs, lang) {
			langs = append(langs, lang)
		}
	}
	return langs
}

func containsLanguage(ids []entity.LanguageID, id entity.LanguageID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
