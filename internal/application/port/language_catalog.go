package port

import "github.com/bnema/fontstack/internal/domain/entity"

// LanguageCatalog is the static list of selectable languages.
type LanguageCatalog interface {
	// All returns every language ordered by CanonicalIndex.
	All() []entity.Language

	// Lookup returns the catalog entry of id.
	Lookup(id entity.LanguageID) (entity.Language, bool)

	// Group returns the script group of id, or ScriptOther when unknown.
	Group(id entity.LanguageID) entity.ScriptGroup
}
