package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SystemFontsRenderer renders installed font families.
type SystemFontsRenderer struct {
	theme *Theme
}

// NewSystemFontsRenderer creates a new renderer with the given theme.
func NewSystemFontsRenderer(theme *Theme) *SystemFontsRenderer {
	return &SystemFontsRenderer{theme: theme}
}

// RenderList renders the families one per line under a count header.
func (r *SystemFontsRenderer) RenderList(families []string) string {
	if len(families) == 0 {
		return r.theme.Subtle.Render("No font families found")
	}
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	lines := make([]string, 0, len(families)+1)
	lines = append(lines, fmt.Sprintf("%s %s", iconStyle.Render(IconDesktop), r.theme.Title.Render(fmt.Sprintf("%d installed families", len(families)))))
	for _, family := range families {
		lines = append(lines, "  "+family)
	}
	return strings.Join(lines, "\n")
}

// RenderCheck renders whether each family is installed.
func (r *SystemFontsRenderer) RenderCheck(families []string, installed func(string) bool) string {
	lines := make([]string, len(families))
	for i, family := range families {
		if installed(family) {
			lines[i] = fmt.Sprintf("%s %s", r.theme.SuccessStyle.Render(IconCheck), family)
		} else {
			lines[i] = fmt.Sprintf("%s %s %s", r.theme.ErrorStyle.Render(IconX), family, r.theme.Subtle.Render("not installed"))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderUnavailable renders the message shown when detection is not possible.
func (r *SystemFontsRenderer) RenderUnavailable() string {
	return fmt.Sprintf("%s %s", r.theme.WarningStyle.Render(IconWarning), "fc-list not found; install fontconfig to detect system fonts")
}
