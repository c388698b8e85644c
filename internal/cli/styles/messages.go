package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/application/usecase"
	"github.com/bnema/fontstack/internal/domain/entity"
)

// MessageRenderer renders status lines, errors and reports.
type MessageRenderer struct {
	theme *Theme
}

// NewMessageRenderer creates a new message renderer with the given theme.
func NewMessageRenderer(theme *Theme) *MessageRenderer {
	return &MessageRenderer{theme: theme}
}

// RenderError renders an error message.
func (r *MessageRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

// RenderSuccess renders a success message.
func (r *MessageRenderer) RenderSuccess(msg string) string {
	return fmt.Sprintf("%s %s", r.theme.SuccessStyle.Render(IconCheck), msg)
}

// RenderWarning renders a warning message.
func (r *MessageRenderer) RenderWarning(msg string) string {
	return fmt.Sprintf("%s %s", r.theme.WarningStyle.Render(IconWarning), msg)
}

// RenderPath renders a labelled file path.
func (r *MessageRenderer) RenderPath(label, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s %s", iconStyle.Render(IconConfig), label, r.theme.Subtle.Render(path))
}

// RenderParseFailures renders files that could not be parsed, or "".
func (r *MessageRenderer) RenderParseFailures(failures []usecase.ParseFailure) string {
	if len(failures) == 0 {
		return ""
	}
	lines := make([]string, 0, len(failures)+1)
	lines = append(lines, r.RenderWarning(fmt.Sprintf("%d font files skipped", len(failures))))
	for _, f := range failures {
		lines = append(lines, fmt.Sprintf("  %s %s", f.File.Name, r.theme.Subtle.Render(f.Err.Error())))
	}
	return strings.Join(lines, "\n")
}

// RenderBatch renders the outcome of adding fallback fonts, or "" when every
// font was added.
func (r *MessageRenderer) RenderBatch(res entity.BatchResult) string {
	var lines []string
	if n := res.Duplicates; n > 0 {
		lines = append(lines, r.RenderWarning(fmt.Sprintf("%d duplicate fonts ignored", n)))
	}
	for _, rej := range res.Rejected {
		lines = append(lines, r.RenderWarning(fmt.Sprintf("%s rejected: %v", rej.Name, rej.Err)))
	}
	return strings.Join(lines, "\n")
}

// RenderImportReport renders what an import could not link, or "".
func (r *MessageRenderer) RenderImportReport(report port.ImportReport) string {
	if !report.Unlinked() {
		return ""
	}
	var lines []string
	if report.Ghosts > 0 {
		lines = append(lines, r.RenderWarning(fmt.Sprintf("%d fonts kept without files", report.Ghosts)))
	}
	if report.DroppedFonts > 0 {
		lines = append(lines, r.RenderWarning(fmt.Sprintf("%d fonts dropped without files", report.DroppedFonts)))
	}
	if report.DroppedOverrides > 0 {
		lines = append(lines, r.RenderWarning(fmt.Sprintf("%d language overrides dropped", report.DroppedOverrides)))
	}
	if len(report.Unresolved) > 0 {
		lines = append(lines, "  "+r.theme.Subtle.Render(strings.Join(report.Unresolved, ", ")))
	}
	return strings.Join(lines, "\n")
}
