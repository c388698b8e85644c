// Package languages provides the built-in language catalog.
package languages

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/bnema/fontstack/internal/domain/entity"
)

// Entry declares one catalog language. Code defaults to ID; Group is derived
// from the tag's script when empty.
type Entry struct {
	ID    string
	Name  string
	Code  string
	Group entity.ScriptGroup
}

// Catalog implements port.LanguageCatalog over a fixed ordered table.
type Catalog struct {
	languages []entity.Language
	byID      map[entity.LanguageID]int
}

// New builds a catalog. Entry order sets CanonicalIndex. Codes must be valid
// BCP 47 tags and ids must be unique.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		languages: make([]entity.Language, 0, len(entries)),
		byID:      make(map[entity.LanguageID]int, len(entries)),
	}
	for _, e := range entries {
		id := entity.LanguageID(strings.TrimSpace(e.ID))
		if id == "" {
			return nil, fmt.Errorf("language %q without id: %w", e.Name, entity.ErrInvalidValue)
		}
		if _, ok := c.byID[id]; ok {
			return nil, fmt.Errorf("language %s declared twice: %w", id, entity.ErrInvalidValue)
		}

		code := e.Code
		if code == "" {
			code = string(id)
		}
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("language %s code %q: %v: %w", id, code, err, entity.ErrInvalidValue)
		}

		group := e.Group
		if group == "" {
			group = groupOf(tag)
		}
		name := e.Name
		if name == "" {
			name = string(id)
		}

		c.byID[id] = len(c.languages)
		c.languages = append(c.languages, entity.Language{
			ID:             id,
			Name:           name,
			Code:           tag.String(),
			Group:          group,
			CanonicalIndex: len(c.languages),
		})
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic(err)
	}
	return c
}

// All implements port.LanguageCatalog.
func (c *Catalog) All() []entity.Language {
	out := make([]entity.Language, len(c.languages))
	copy(out, c.languages)
	return out
}

// Lookup implements port.LanguageCatalog and service.LanguageLookup.
func (c *Catalog) Lookup(id entity.LanguageID) (entity.Language, bool) {
	i, ok := c.byID[id]
	if !ok {
		return entity.Language{}, false
	}
	return c.languages[i], true
}

// Group implements port.LanguageCatalog.
func (c *Catalog) Group(id entity.LanguageID) entity.ScriptGroup {
	if lang, ok := c.Lookup(id); ok {
		return lang.Group
	}
	return entity.ScriptOther
}

// Resolve returns the catalog entry for id, or a synthetic entry carrying the
// canonical tag when id is not in the catalog.
func (c *Catalog) Resolve(id entity.LanguageID) entity.Language {
	if lang, ok := c.Lookup(id); ok {
		return lang
	}
	lang := entity.Language{ID: id, Name: string(id), Code: string(id), Group: entity.ScriptOther, CanonicalIndex: len(c.languages)}
	if tag, err := language.Parse(string(id)); err == nil {
		lang.Code = tag.String()
		lang.Group = groupOf(tag)
	}
	return lang
}

// Match returns the catalog language closest to a user supplied tag such as
// "pt_BR" or "zh-Hant".
func (c *Catalog) Match(raw string) (entity.Language, bool) {
	if lang, ok := c.Lookup(entity.LanguageID(raw)); ok {
		return lang, true
	}
	want, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil || len(c.languages) == 0 {
		return entity.Language{}, false
	}

	tags := make([]language.Tag, len(c.languages))
	for i, l := range c.languages {
		tags[i] = language.Make(l.Code)
	}
	_, idx, conf := language.NewMatcher(tags).Match(want)
	if conf < language.High {
		return entity.Language{}, false
	}
	return c.languages[idx], true
}

var scriptGroups = map[string]entity.ScriptGroup{
	"Latn": entity.ScriptLatin,
	"Cyrl": entity.ScriptCyrillic,
	"Grek": entity.ScriptGreek,
	"Arab": entity.ScriptArabic,
	"Hebr": entity.ScriptHebrew,
	"Deva": entity.ScriptDevanagari,
	"Hani": entity.ScriptCJK,
	"Hans": entity.ScriptCJK,
	"Hant": entity.ScriptCJK,
	"Jpan": entity.ScriptCJK,
	"Kore": entity.ScriptCJK,
	"Hang": entity.ScriptCJK,
	"Thai": entity.ScriptThai,
}

func groupOf(tag language.Tag) entity.ScriptGroup {
	script, _ := tag.Script()
	if g, ok := scriptGroups[script.String()]; ok {
		return g
	}
	return entity.ScriptOther
}
