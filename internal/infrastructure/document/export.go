package document

import (
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/bnema/fontstack/internal/domain/entity"
)

// Export captures the session. Font refs are the session's font ids.
func Export(s *entity.Session, now time.Time) Document {
	ov := s.Overrides

	styles := FontStyles{
		Fonts:                 make([]FontEntry, 0, s.Registry.Len()),
		BaseFontSize:          s.BaseFontSize,
		LineHeight:            s.BaseLineHeight,
		GlobalFallbackScale:   ov.GlobalFallbackScale(),
		FallbackFontOverrides: orderedmap.New[string, string](),
		PrimaryFontOverrides:  orderedmap.New[string, string](),
		LineHeightOverrides:   make(map[string]float64),
	}

	for _, f := range s.Registry.Fonts() {
		entry := FontEntry{
			Ref:                string(f.ID),
			Name:               f.Name,
			FileName:           f.FileName(),
			System:             f.IsSystem(),
			Role:               string(f.Role),
			IsLanguageSpecific: f.IsLanguageSpecific,
			IsPrimaryOverride:  f.IsPrimaryOverride,
		}
		if v, ok := ov.FontScale(f.ID); ok {
			entry.ScaleOverride = &v
		}
		if v, ok := ov.FontLineHeight(f.ID); ok {
			entry.LineHeightOverride = &v
		}
		styles.Fonts = append(styles.Fonts, entry)
	}

	for _, pin := range ov.FallbackOverrides() {
		styles.FallbackFontOverrides.Set(string(pin.Language), string(pin.FontID))
	}
	for _, pin := range ov.PrimaryOverrides() {
		styles.PrimaryFontOverrides.Set(string(pin.Language), string(pin.FontID))
	}
	for lang, v := range ov.LineHeightOverrides() {
		styles.LineHeightOverrides[string(lang)] = v
	}

	headers := make(map[string]HeaderStyle, len(s.HeaderStyles))
	for tag, h := range s.HeaderStyles {
		headers[string(tag)] = HeaderStyle{
			Scale:        h.Scale,
			LineHeight:   h.LineHeight,
			AssignedRole: string(h.AssignedRole),
		}
	}

	return Document{
		Metadata: Metadata{
			Version:   Version,
			Timestamp: now.UTC().Format(time.RFC3339),
		},
		Data: Data{
			FontStyles:          styles,
			ConfiguredLanguages: languageStrings(s.ConfiguredLanguages.IDs()),
			PrimaryLanguages:    languageStrings(s.PrimaryLanguages.IDs()),
			HeaderStyles:        headers,
		},
	}
}

func languageStrings(ids []entity.LanguageID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
