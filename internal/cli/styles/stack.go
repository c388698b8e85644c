package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fontstack/internal/application/usecase"
	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/domain/service"
)

// StackRenderer renders resolutions, groupings and font lists.
type StackRenderer struct {
	theme *Theme
}

// NewStackRenderer creates a new stack renderer with the given theme.
func NewStackRenderer(theme *Theme) *StackRenderer {
	return &StackRenderer{theme: theme}
}

// RenderResolutions renders one table row per language.
func (r *StackRenderer) RenderResolutions(rows []usecase.LanguageResolution) string {
	if len(rows) == 0 {
		return r.theme.Subtle.Render("No languages to resolve")
	}

	t := NewTable(r.theme, "Language", "Font", "Scale", "Line height", "Source")
	for _, row := range rows {
		res := row.Resolution
		t.Row(
			fmt.Sprintf("%s (%s)", row.Language.Name, row.Language.ID),
			fontLabel(res.Font),
			formatPercent(res.ScalePercent),
			formatNumber(res.LineHeight),
			r.sourceLabel(res),
		)
	}
	return t.Render()
}

func (r *StackRenderer) sourceLabel(res service.Resolution) string {
	if res.IsPinned() {
		return r.theme.Highlight.Render(string(res.Source))
	}
	return string(res.Source)
}

// RenderGroups renders the primary font followed by each non-empty group.
func (r *StackRenderer) RenderGroups(g service.Grouping, languageName func(entity.LanguageID) string) string {
	if g.Primary == nil {
		return r.theme.Subtle.Render("The stack is empty")
	}

	parts := []string{r.header(IconFont, "Primary"), "  " + r.theme.Highlight.Render(fontLabel(g.Primary))}
	parts = append(parts, r.fontSection("Global fallbacks", g.GlobalFallbackFonts)...)
	parts = append(parts, r.fontSection("System fonts", g.SystemFonts)...)
	parts = append(parts, r.languageSection("Primary overrides", g.PrimaryOverrides, languageName)...)
	parts = append(parts, r.languageSection("Language specific", g.LanguageSpecific, languageName)...)
	return strings.Join(parts, "\n")
}

func (r *StackRenderer) fontSection(title string, fonts []*entity.Font) []string {
	if len(fonts) == 0 {
		return nil
	}
	lines := []string{"", r.header(IconLayers, title)}
	for i, f := range fonts {
		lines = append(lines, fmt.Sprintf("  %s %s", r.theme.Subtle.Render(strconv.Itoa(i+1)+"."), fontLabel(f)))
	}
	return lines
}

func (r *StackRenderer) languageSection(
	title string,
	groups []service.LanguageGroup,
	languageName func(entity.LanguageID) string,
) []string {
	if len(groups) == 0 {
		return nil
	}
	lines := []string{"", r.header(IconLanguage, title)}
	for _, g := range groups {
		names := make([]string, len(g.LanguageIDs))
		for i, id := range g.LanguageIDs {
			names[i] = languageName(id)
		}
		langs := r.theme.Subtle.Render("unassigned")
		if len(names) > 0 {
			langs = strings.Join(names, ", ")
		}
		lines = append(lines, fmt.Sprintf("  %s %s %s", fontLabel(g.Font), r.theme.Subtle.Render(IconArrow), langs))
	}
	return lines
}

// RenderFonts renders the deduplicated font list with parsed metadata.
func (r *StackRenderer) RenderFonts(view service.DedupView) string {
	if len(view.Visible) == 0 {
		return r.theme.Subtle.Render("The stack is empty")
	}

	t := NewTable(r.theme, "#", "Font", "Role", "Source", "Glyphs", "Weight", "Languages")
	for i, f := range view.Visible {
		langs := view.LanguagesFor(f)
		ids := make([]string, len(langs))
		for j, id := range langs {
			ids[j] = string(id)
		}
		t.Row(
			strconv.Itoa(i+1),
			fontLabel(f),
			roleLabel(f),
			sourceLabel(f),
			glyphLabel(f),
			weightLabel(f),
			strings.Join(ids, ", "),
		)
	}
	return t.Render()
}

// RenderStack renders a CSS font-family stack one family per line.
func (r *StackRenderer) RenderStack(families []string) string {
	accent := lipgloss.NewStyle().Foreground(r.theme.Accent)
	lines := make([]string, len(families))
	for i, family := range families {
		lines[i] = fmt.Sprintf("  %s %s", accent.Render(strconv.Itoa(i+1)+"."), family)
	}
	return strings.Join(lines, "\n")
}

func (r *StackRenderer) header(icon, title string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s", iconStyle.Render(icon), r.theme.Title.Render(title))
}

func fontLabel(f *entity.Font) string {
	if f == nil {
		return "-"
	}
	if name := f.FileName(); name != "" && name != f.Name {
		return fmt.Sprintf("%s (%s)", f.Name, name)
	}
	return f.Name
}

func roleLabel(f *entity.Font) string {
	switch {
	case f.Role == entity.RolePrimary:
		return "primary"
	case f.IsPrimaryOverride:
		return "primary override"
	case f.IsLanguageSpecific:
		return "language"
	default:
		return "fallback"
	}
}

func sourceLabel(f *entity.Font) string {
	switch {
	case f.IsSystem():
		return "system"
	case f.IsGhost():
		return "missing"
	default:
		return "file"
	}
}

func glyphLabel(f *entity.Font) string {
	meta := f.Metadata()
	if meta == nil {
		return "-"
	}
	return strconv.Itoa(meta.GlyphCount)
}

func weightLabel(f *entity.Font) string {
	meta := f.Metadata()
	switch {
	case meta == nil:
		return "-"
	case meta.WeightAxis != nil:
		return fmt.Sprintf("%s-%s", formatNumber(meta.WeightAxis.Min), formatNumber(meta.WeightAxis.Max))
	case meta.StaticWeight != nil:
		return strconv.Itoa(*meta.StaticWeight)
	default:
		return "-"
	}
}

func formatPercent(v float64) string {
	return formatNumber(v) + "%"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
