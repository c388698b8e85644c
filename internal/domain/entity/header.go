package entity

import "fmt"

// HeadingTag is one of h1..h6.
type HeadingTag string

const (
	H1 HeadingTag = "h1"
	H2 HeadingTag = "h2"
	H3 HeadingTag = "h3"
	H4 HeadingTag = "h4"
	H5 HeadingTag = "h5"
	H6 HeadingTag = "h6"
)

// HeadingTags lists the tags in document order.
func HeadingTags() []HeadingTag {
	return []HeadingTag{H1, H2, H3, H4, H5, H6}
}

// HeaderRole picks the font a heading is set in.
type HeaderRole string

const (
	HeaderRolePrimary   HeaderRole = "primary"
	HeaderRoleSecondary HeaderRole = "secondary"
)

// HeaderStyle is the typography of one heading level.
type HeaderStyle struct {
	Scale        float64 // em multiplier of the base font size
	LineHeight   float64
	AssignedRole HeaderRole
}

// DefaultHeaderLineHeight applies to every heading by default.
const DefaultHeaderLineHeight = 1.2

var defaultHeaderScales = map[HeadingTag]float64{
	H1: 2.0,
	H2: 1.5,
	H3: 1.25,
	H4: 1.0,
	H5: 0.875,
	H6: 0.75,
}

// DefaultHeaderStyles returns the default heading typography.
func DefaultHeaderStyles() map[HeadingTag]HeaderStyle {
	out := make(map[HeadingTag]HeaderStyle, len(defaultHeaderScales))
	for _, tag := range HeadingTags() {
		out[tag] = HeaderStyle{
			Scale:        defaultHeaderScales[tag],
			LineHeight:   DefaultHeaderLineHeight,
			AssignedRole: HeaderRolePrimary,
		}
	}
	return out
}

// IsHeadingTag reports whether tag is h1..h6.
func IsHeadingTag(tag HeadingTag) bool {
	_, ok := defaultHeaderScales[tag]
	return ok
}

// Validate checks a heading style.
func (h HeaderStyle) Validate() error {
	if err := checkPositive("header scale", h.Scale); err != nil {
		return err
	}
	if err := checkPositive("header line height", h.LineHeight); err != nil {
		return err
	}
	switch h.AssignedRole {
	case HeaderRolePrimary, HeaderRoleSecondary:
		return nil
	}
	return fmt.Errorf("header role %q: %w", h.AssignedRole, ErrInvalidValue)
}
