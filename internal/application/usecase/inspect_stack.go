package usecase

import (
	"context"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/domain/service"
	"github.com/bnema/fontstack/internal/logging"
)

// InspectStackUseCase answers read-only questions about a session.
type InspectStackUseCase struct {
	catalog port.LanguageCatalog
}

// NewInspectStackUseCase creates a new inspection use case.
func NewInspectStackUseCase(catalog port.LanguageCatalog) *InspectStackUseCase {
	return &InspectStackUseCase{catalog: catalog}
}

// LanguageResolution pairs a language with its resolved typography.
type LanguageResolution struct {
	Language   entity.Language
	Resolution service.Resolution
}

// Resolve resolves langs in catalog order. With no langs it resolves every
// configured language plus the effective primary languages.
func (uc *InspectStackUseCase) Resolve(ctx context.Context, s *entity.Session, langs []entity.LanguageID) []LanguageResolution {
	if len(langs) == 0 {
		set := entity.NewLanguageSet(s.ConfiguredLanguages.IDs()...)
		for _, id := range s.EffectivePrimaryLanguages() {
			set.Add(id)
		}
		langs = set.IDs()
	}
	logging.FromContext(ctx).Debug().Int("languages", len(langs)).Msg("resolving languages")

	sorted := service.SortLanguages(entity.NewLanguageSet(langs...).IDs(), uc.catalog)
	out := make([]LanguageResolution, len(sorted))
	for i, id := range sorted {
		out[i] = LanguageResolution{
			Language:   languageOf(uc.catalog, id),
			Resolution: service.ResolveForLanguage(s, id),
		}
	}
	return out
}

// Groups returns the sidebar grouping of the stack.
func (uc *InspectStackUseCase) Groups(ctx context.Context, s *entity.Session) service.Grouping {
	logging.FromContext(ctx).Debug().Int("fonts", s.Registry.Len()).Msg("grouping fonts")
	return service.GroupAndSort(s, uc.catalog)
}

// Visible returns the deduplicated font list.
func (uc *InspectStackUseCase) Visible(ctx context.Context, s *entity.Session) service.DedupView {
	logging.FromContext(ctx).Debug().Int("fonts", s.Registry.Len()).Msg("deduplicating fonts")
	return service.VisibleFonts(s, uc.catalog)
}
