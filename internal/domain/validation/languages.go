package validation

import (
	"fmt"
	"strings"
	"unicode"
)

const maxLanguageIDLength = 35

// ValidateLanguageID checks that value looks like a language tag: letters,
// digits, hyphens and underscores only.
func ValidateLanguageID(field string, value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{field + " cannot be empty"}
	}
	if len(value) > maxLanguageIDLength {
		return []string{field + " is too long"}
	}
	for _, r := range value {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_') {
			return []string{fmt.Sprintf("%s has an invalid character %q (got: %s)", field, r, value)}
		}
	}
	return nil
}

// ValidateLanguageIDs checks every entry of a language list.
func ValidateLanguageIDs(field string, values []string) []string {
	var errs []string
	for i, v := range values {
		errs = append(errs, ValidateLanguageID(field+"["+itoa(i)+"]", v)...)
	}
	return errs
}
