// Package validation holds field checks shared by configuration and import
// paths. Each check returns human-readable messages, empty when valid.
package validation

import "strings"

const maxFamilyLength = 200

// ValidateFontFamily checks a font family name.
func ValidateFontFamily(field string, value string) []string {
	value = strings.TrimSpace(value)
	var errs []string

	if value == "" {
		errs = append(errs, field+" cannot be empty")
		return errs
	}

	if strings.ContainsAny(value, "\r\n") {
		errs = append(errs, field+" must not contain newlines")
	}

	if strings.ContainsAny(value, `";{}`) {
		errs = append(errs, field+` must not contain quotes, semicolons or braces`)
	}

	if len(value) > maxFamilyLength {
		errs = append(errs, field+" is too long")
	}

	return errs
}

// ValidateFontFamilies checks every entry of a family list.
func ValidateFontFamilies(field string, values []string) []string {
	var errs []string
	for i, v := range values {
		errs = append(errs, ValidateFontFamily(field+"["+itoa(i)+"]", v)...)
	}
	return errs
}
