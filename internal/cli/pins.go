package cli

import (
	"fmt"
	"strings"

	"github.com/bnema/fontstack/internal/domain/entity"
)

// LanguagePin is a font file reserved for some languages.
type LanguagePin struct {
	Path      string
	Kind      entity.CloneKind
	Languages []string
}

// ParseLanguagePin parses "path=lang[,lang...]".
func ParseLanguagePin(value string, kind entity.CloneKind) (LanguagePin, error) {
	i := strings.LastIndex(value, "=")
	if i <= 0 || i == len(value)-1 {
		return LanguagePin{}, fmt.Errorf("%q is not path=lang[,lang]: %w", value, entity.ErrInvalidValue)
	}

	pin := LanguagePin{Path: strings.TrimSpace(value[:i]), Kind: kind}
	for _, lang := range strings.Split(value[i+1:], ",") {
		if lang = strings.TrimSpace(lang); lang != "" {
			pin.Languages = append(pin.Languages, lang)
		}
	}
	if pin.Path == "" || len(pin.Languages) == 0 {
		return LanguagePin{}, fmt.Errorf("%q is not path=lang[,lang]: %w", value, entity.ErrInvalidValue)
	}
	return pin, nil
}

// ParseLanguagePins parses every value with ParseLanguagePin.
func ParseLanguagePins(values []string, kind entity.CloneKind) ([]LanguagePin, error) {
	pins := make([]LanguagePin, 0, len(values))
	for _, v := range values {
		pin, err := ParseLanguagePin(v, kind)
		if err != nil {
			return nil, err
		}
		pins = append(pins, pin)
	}
	return pins, nil
}
