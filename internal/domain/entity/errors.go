package entity

import "errors"

// Stack mutation and import errors. Callers compare with errors.Is and use
// ReasonOf to obtain a stable code suitable for a UI layer.
var (
	ErrDuplicateFont               = errors.New("duplicate font")
	ErrInvalidPrimaryCandidate     = errors.New("font cannot become primary")
	ErrCannotRemoveLastFont        = errors.New("cannot remove the last font")
	ErrFontNotFound                = errors.New("font not found")
	ErrIndexOutOfRange             = errors.New("index out of range")
	ErrInvalidValue                = errors.New("invalid value")
	ErrParseFailure                = errors.New("font parse failure")
	ErrUnresolvableImportReference = errors.New("unresolvable import reference")
	ErrUnsupportedVersion          = errors.New("unsupported document version")
)

// Reason is an inspectable failure code.
type Reason string

const (
	ReasonNone                        Reason = ""
	ReasonDuplicateFont               Reason = "duplicate_font"
	ReasonInvalidPrimaryCandidate     Reason = "invalid_primary_candidate"
	ReasonCannotRemoveLastFont        Reason = "cannot_remove_last_font"
	ReasonFontNotFound                Reason = "font_not_found"
	ReasonIndexOutOfRange             Reason = "index_out_of_range"
	ReasonInvalidValue                Reason = "invalid_value"
	ReasonParseFailure                Reason = "parse_failure"
	ReasonUnresolvableImportReference Reason = "unresolvable_import_reference"
	ReasonUnsupportedVersion          Reason = "unsupported_version"
	ReasonUnknown                     Reason = "unknown"
)

var reasons = []struct {
	err    error
	reason Reason
}{
	{ErrDuplicateFont, ReasonDuplicateFont},
	{ErrInvalidPrimaryCandidate, ReasonInvalidPrimaryCandidate},
	{ErrCannotRemoveLastFont, ReasonCannotRemoveLastFont},
	{ErrFontNotFound, ReasonFontNotFound},
	{ErrIndexOutOfRange, ReasonIndexOutOfRange},
	{ErrInvalidValue, ReasonInvalidValue},
	{ErrParseFailure, ReasonParseFailure},
	{ErrUnresolvableImportReference, ReasonUnresolvableImportReference},
	{ErrUnsupportedVersion, ReasonUnsupportedVersion},
}

// ReasonOf maps err to its reason code. A nil error maps to ReasonNone.
func ReasonOf(err error) Reason {
	if err == nil {
		return ReasonNone
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ReasonUnknown
}
