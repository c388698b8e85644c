// Package cssexport renders a resolved font stack to a stylesheet.
package cssexport

import (
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/domain/service"
)

// DefaultOptions enables every section with pretty output.
func DefaultOptions() port.CSSOptions {
	return port.CSSOptions{
		IncludeFontFace: true,
		UseCSSVariables: true,
		IncludeComments: true,
		PrettyPrint:     true,
	}
}

// Exporter implements port.StylesheetRenderer.
type Exporter struct{}

// New creates an exporter.
func New() *Exporter {
	return &Exporter{}
}

// Render implements port.StylesheetRenderer.
func (*Exporter) Render(snap service.ResolvedSnapshot, languages []entity.Language, opts port.CSSOptions) string {
	return Export(snap, languages, opts)
}

// Export renders snap. Sections come in a fixed order: header comment, font
// faces, custom properties and body, headings, then language rules. Only
// languages that do not inherit the body typography get a rule; they are
// emitted by catalog order. Without PrettyPrint every whitespace run of the
// pretty output collapses to one space.
func Export(snap service.ResolvedSnapshot, languages []entity.Language, opts port.CSSOptions) string {
	w := &writer{comments: opts.IncludeComments}

	w.comment(headerComment(snap)...)

	if opts.IncludeFontFace && len(snap.Faces) > 0 {
		w.comment("Font faces")
		for _, face := range snap.Faces {
			w.rule("@font-face", fontFace(face))
		}
	}

	stack := familyList(snap.Stack)
	primary := familyList([]string{snap.PrimaryFamily})
	secondary := familyList([]string{snap.SecondaryFamily})
	if opts.UseCSSVariables {
		w.comment("Custom properties")
		var vars []decl
		if snap.PrimaryFamily != "" {
			vars = append(vars, decl{"--font-primary", primary})
		}
		if snap.SecondaryFamily != "" {
			vars = append(vars, decl{"--font-secondary", secondary})
		}
		if stack != "" {
			vars = append(vars, decl{"--font-stack", stack})
		}
		vars = append(vars,
			decl{"--font-size-base", number(snap.BaseFontSize) + "px"},
			decl{"--line-height-base", number(snap.BaseLineHeight)},
			decl{"--fallback-scale", percent(snap.GlobalFallbackScale)},
		)
		w.rule(":root", vars)

		body := []decl{
			{"font-size", "var(--font-size-base)"},
			{"line-height", "var(--line-height-base)"},
		}
		if stack != "" {
			body = append([]decl{{"font-family", "var(--font-stack)"}}, body...)
		}
		w.rule("body", body)
	} else {
		body := []decl{
			{"font-size", number(snap.BaseFontSize) + "px"},
			{"line-height", number(snap.BaseLineHeight)},
		}
		if stack != "" {
			body = append([]decl{{"font-family", stack}}, body...)
		}
		w.rule("body", body)
	}

	if len(snap.Headers) > 0 {
		w.comment("Headings")
		for _, h := range snap.Headers {
			w.rule(string(h.Tag), heading(snap, h, opts.UseCSSVariables))
		}
	}

	rules := languageRules(snap, languages)
	if len(rules) > 0 {
		w.comment("Language overrides")
		for _, r := range rules {
			w.rule(r.selector, r.decls)
		}
	}

	out := w.String()
	if !opts.PrettyPrint {
		out = strings.Join(strings.Fields(out), " ")
	}
	return out
}

func headerComment(snap service.ResolvedSnapshot) []string {
	lines := []string{"Font stack generated by fontstack"}
	if snap.PrimaryFamily != "" {
		lines = append(lines, "Primary: "+snap.PrimaryFamily)
	}
	lines = append(lines, "Fallback scale: "+percent(snap.GlobalFallbackScale))
	return lines
}

func fontFace(face service.FontFace) []decl {
	decls := []decl{
		{"font-family", quote(face.Family)},
		{"src", fmt.Sprintf("url(%s)%s", quote(face.Font.URL()), formatHint(face.Font.FileName()))},
	}
	if weight := fontWeight(face.Font.Metadata()); weight != "" {
		decls = append(decls, decl{"font-weight", weight})
	}
	decls = append(decls,
		decl{"font-display", "swap"},
		decl{"size-adjust", percent(face.ScalePercent)},
	)
	return decls
}

func heading(snap service.ResolvedSnapshot, h service.HeaderRule, vars bool) []decl {
	var decls []decl
	switch {
	case h.Family == "":
	case vars && h.Family == snap.SecondaryFamily && h.Style.AssignedRole == entity.HeaderRoleSecondary:
		decls = append(decls, decl{"font-family", "var(--font-secondary)"})
	case vars && h.Family == snap.PrimaryFamily:
		decls = append(decls, decl{"font-family", "var(--font-primary)"})
	default:
		decls = append(decls, decl{"font-family", familyList(withStack(h.Family, snap.Stack))})
	}
	return append(decls,
		decl{"font-size", number(math.Round(h.Style.Scale*snap.BaseFontSize)) + "px"},
		decl{"line-height", number(h.Style.LineHeight)},
	)
}

type langRule struct {
	selector string
	decls    []decl
}

func languageRules(snap service.ResolvedSnapshot, languages []entity.Language) []langRule {
	langs := slices.Clone(languages)
	slices.SortStableFunc(langs, func(a, b entity.Language) int {
		return a.CanonicalIndex - b.CanonicalIndex
	})

	var rules []langRule
	seen := make(map[entity.LanguageID]bool, len(langs))
	for _, lang := range langs {
		if seen[lang.ID] {
			continue
		}
		seen[lang.ID] = true

		res, ok := snap.Resolutions[lang.ID]
		if !ok || snap.InheritsDefault(res) {
			continue
		}
		code := lang.Code
		if code == "" {
			code = string(lang.ID)
		}

		var decls []decl
		if res.IsPinned() && res.Font != nil {
			decls = append(decls, decl{"font-family", familyList(withStack(snap.FamilyOf(res.FontID), snap.Stack))})
		}
		decls = append(decls, decl{"line-height", number(res.LineHeight)})
		rules = append(rules, langRule{selector: fmt.Sprintf("[lang=%s]", quote(code)), decls: decls})
	}
	return rules
}

// withStack puts family in front of the stack, without repeating it.
func withStack(family string, stack []string) []string {
	out := []string{family}
	for _, f := range stack {
		if f != family {
			out = append(out, f)
		}
	}
	return out
}

func familyList(families []string) string {
	parts := make([]string, 0, len(families))
	for _, f := range families {
		if f == "" {
			continue
		}
		parts = append(parts, familyName(f))
	}
	return strings.Join(parts, ", ")
}

// familyName leaves CSS generic keywords bare and quotes everything else.
func familyName(f string) string {
	if f == strings.ToLower(f) && !strings.ContainsAny(f, " \t") && entity.IsGenericFamily(f) {
		return f
	}
	return quote(f)
}

func fontWeight(meta *entity.FontMetadata) string {
	switch {
	case meta == nil:
		return ""
	case meta.WeightAxis != nil:
		return number(meta.WeightAxis.Min) + " " + number(meta.WeightAxis.Max)
	case meta.StaticWeight != nil:
		return number(float64(*meta.StaticWeight))
	}
	return ""
}

var formats = map[string]string{
	".ttf":   "truetype",
	".otf":   "opentype",
	".woff":  "woff",
	".woff2": "woff2",
	".ttc":   "collection",
}

func formatHint(fileName string) string {
	if f, ok := formats[strings.ToLower(filepath.Ext(fileName))]; ok {
		return fmt.Sprintf(" format(%s)", quote(f))
	}
	return ""
}

func percent(v float64) string {
	return number(math.Round(v)) + "%"
}

var _ port.StylesheetRenderer = (*Exporter)(nil)
