// Package styles renders CLI output with lipgloss.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of base colors of a theme.
type Palette struct {
	Text    string
	Muted   string
	Accent  string
	Border  string
	Error   string
	Warning string
}

// DefaultPalette returns the dark palette used by the CLI.
func DefaultPalette() Palette {
	return Palette{
		Text:    "#ffffff",
		Muted:   "#909090",
		Accent:  "#4ade80",
		Border:  "#333333",
		Error:   "#ef4444",
		Warning: "#f59e0b",
	}
}

// Theme holds lipgloss colors and styles.
type Theme struct {
	Accent lipgloss.Color
	Border lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	TableCell lipgloss.Style
	TableHead lipgloss.Style
}

// NewTheme creates the default CLI theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultPalette())
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	text := lipgloss.Color(p.Text)
	muted := lipgloss.Color(p.Muted)
	accent := lipgloss.Color(p.Accent)
	border := lipgloss.Color(p.Border)
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	return &Theme{
		Accent: accent,
		Border: border,

		Title:        fg(text).Bold(true),
		Normal:       fg(text),
		Subtle:       fg(muted),
		Highlight:    fg(accent).Bold(true),
		ErrorStyle:   fg(lipgloss.Color(p.Error)),
		WarningStyle: fg(lipgloss.Color(p.Warning)),
		SuccessStyle: fg(accent),

		TableCell: fg(text).Padding(0, 1),
		TableHead: fg(accent).Bold(true).Padding(0, 1),
	}
}
