package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/domain/service"
	"github.com/bnema/fontstack/internal/logging"
)

// ExportCSSUseCase renders a session as a stylesheet.
type ExportCSSUseCase struct {
	catalog  port.LanguageCatalog
	renderer port.StylesheetRenderer
}

// NewExportCSSUseCase creates a new CSS export use case.
func NewExportCSSUseCase(catalog port.LanguageCatalog, renderer port.StylesheetRenderer) *ExportCSSUseCase {
	return &ExportCSSUseCase{catalog: catalog, renderer: renderer}
}

// Execute resolves the session and renders it with opts.
func (uc *ExportCSSUseCase) Execute(ctx context.Context, s *entity.Session, opts port.CSSOptions) (string, error) {
	log := logging.FromContext(ctx)
	log.Debug().Int("fonts", s.Registry.Len()).Msg("exporting css")

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("failed to export css: %w", err)
	}

	snap := service.Snapshot(s, uc.catalog)
	languages := make([]entity.Language, 0, len(snap.Resolutions))
	for _, id := range service.SortLanguages(mapKeys(snap.Resolutions), uc.catalog) {
		languages = append(languages, languageOf(uc.catalog, id))
	}

	css := uc.renderer.Render(snap, languages, opts)
	log.Debug().Int("bytes", len(css)).Int("languages", len(languages)).Msg("css exported")
	return css, nil
}

// languageOf returns the catalog entry of id, or a bare entry sorting after
// every known language.
func languageOf(catalog port.LanguageCatalog, id entity.LanguageID) entity.Language {
	if lang, ok := catalog.Lookup(id); ok {
		return lang
	}
	return entity.Language{
		ID:             id,
		Name:           string(id),
		Code:           string(id),
		Group:          entity.ScriptOther,
		CanonicalIndex: len(catalog.All()),
	}
}

// mapKeys returns the keys of m sorted by id.
func mapKeys[V any](m map[entity.LanguageID]V) []entity.LanguageID {
	keys := make([]entity.LanguageID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
