package document

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/domain/entity"
)

// CheckVersion accepts documents of the current major version.
func CheckVersion(version string) error {
	major, _, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(version), "v"), ".")
	want, _, _ := strings.Cut(Version, ".")
	if n, err := strconv.Atoi(major); err != nil || strconv.Itoa(n) != want {
		return fmt.Errorf("version %q: %w", version, entity.ErrUnsupportedVersion)
	}
	return nil
}

// Import rebuilds a session from doc, linking uploaded entries to files by
// file name first and by family name second. Entries without a matching
// file are dropped, or declared as ghosts with KeepUnresolved, and overrides
// naming a dropped entry are dropped. Both are counted in the report. Ids
// are fresh; refs only live inside the document.
func Import(doc Document, files []*entity.Font, opts port.ImportOptions) (*entity.Session, port.ImportReport, error) {
	var report port.ImportReport
	if err := CheckVersion(doc.Metadata.Version); err != nil {
		return nil, report, err
	}
	data := doc.Data
	styles := data.FontStyles
	s := entity.NewSession()

	if err := s.SetBaseTypography(orDefault(styles.BaseFontSize, entity.DefaultBaseFontSize), orDefault(styles.LineHeight, entity.DefaultBaseLineHeight)); err != nil {
		return nil, report, err
	}
	if err := s.Overrides.SetGlobalFallbackScale(orDefault(styles.GlobalFallbackScale, entity.DefaultGlobalFallbackScale)); err != nil {
		return nil, report, err
	}

	idx := newFileIndex(files)
	refs := make(map[string]entity.FontID, len(styles.Fonts))
	var pending []pendingEntry

	apply := func(e FontEntry, font *entity.Font) error {
		id, err := addEntry(s.Registry, e, font)
		if err != nil {
			report.DroppedFonts++
			report.Unresolved = append(report.Unresolved, e.Name)
			return nil
		}
		refs[e.Ref] = id
		if e.ScaleOverride != nil {
			if err := s.Overrides.SetFontScale(id, e.ScaleOverride); err != nil {
				return err
			}
		}
		if e.LineHeightOverride != nil {
			if err := s.Overrides.SetFontLineHeight(id, e.LineHeightOverride); err != nil {
				return err
			}
		}
		return nil
	}

	for _, e := range primaryFirst(styles.Fonts) {
		font, ok := idx.resolve(e, opts.KeepUnresolved)
		if !ok {
			report.DroppedFonts++
			report.Unresolved = append(report.Unresolved, e.Name)
			continue
		}
		if font.IsGhost() {
			report.Unresolved = append(report.Unresolved, e.Name)
		}
		// System and language entries need a primary in place first.
		if s.Registry.Len() == 0 && (font.IsSystem() || cloneKindOf(e) != "") {
			pending = append(pending, pendingEntry{e, font})
			continue
		}
		if err := apply(e, font); err != nil {
			return nil, report, err
		}
		if s.Registry.Len() > 0 {
			for _, p := range pending {
				if err := apply(p.entry, p.font); err != nil {
					return nil, report, err
				}
			}
			pending = nil
		}
	}
	for _, p := range pending {
		report.DroppedFonts++
		report.Unresolved = append(report.Unresolved, p.entry.Name)
	}

	pins := []struct {
		m   *LanguageFonts
		set func(entity.LanguageID, entity.FontID) error
	}{
		{styles.FallbackFontOverrides, s.Overrides.SetFallbackOverride},
		{styles.PrimaryFontOverrides, s.Overrides.SetPrimaryOverride},
	}
	for _, p := range pins {
		if p.m == nil {
			continue
		}
		for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
			id, ok := refs[pair.Value]
			if !ok {
				report.DroppedOverrides++
				continue
			}
			if err := p.set(entity.LanguageID(pair.Key), id); err != nil {
				return nil, report, err
			}
		}
	}

	for _, lang := range sortedKeys(styles.LineHeightOverrides) {
		v := styles.LineHeightOverrides[lang]
		if err := s.Overrides.SetLineHeightOverride(entity.LanguageID(lang), &v); err != nil {
			return nil, report, err
		}
	}

	for _, lang := range data.ConfiguredLanguages {
		if err := s.AddLanguage(entity.LanguageID(lang), false); err != nil {
			return nil, report, err
		}
	}
	for _, lang := range data.PrimaryLanguages {
		if err := s.AddLanguage(entity.LanguageID(lang), true); err != nil {
			return nil, report, err
		}
	}

	for _, tag := range sortedKeys(data.HeaderStyles) {
		h := data.HeaderStyles[tag]
		role := entity.HeaderRole(h.AssignedRole)
		if role == "" {
			role = entity.HeaderRolePrimary
		}
		style := entity.HeaderStyle{Scale: h.Scale, LineHeight: h.LineHeight, AssignedRole: role}
		if err := s.SetHeaderStyle(entity.HeadingTag(tag), style); err != nil {
			return nil, report, err
		}
	}

	report.Fonts = s.Registry.Len()
	for _, f := range s.Registry.Fonts() {
		if f.IsGhost() {
			report.Ghosts++
		}
	}
	return s, report, nil
}

type pendingEntry struct {
	entry FontEntry
	font  *entity.Font
}

func addEntry(reg *entity.FontRegistry, e FontEntry, font *entity.Font) (entity.FontID, error) {
	if kind := cloneKindOf(e); kind != "" {
		return reg.AddLanguageFont(font, kind)
	}
	id, err := reg.AddFallback(font)
	if errors.Is(err, entity.ErrDuplicateFont) {
		// Repeated generic entry: point its ref at the one already restored.
		for _, f := range reg.Find(font.IdentityKey()) {
			if f.IsGeneric() && f.IsSystem() == font.IsSystem() {
				return f.ID, nil
			}
		}
	}
	return id, err
}

func cloneKindOf(e FontEntry) entity.CloneKind {
	if e.Role == string(entity.RolePrimary) {
		return ""
	}
	switch {
	case e.IsPrimaryOverride:
		return entity.ClonePrimaryOverride
	case e.IsLanguageSpecific:
		return entity.CloneLanguageSpecific
	}
	return ""
}

// primaryFirst moves the first primary entry to the front.
func primaryFirst(entries []FontEntry) []FontEntry {
	for i, e := range entries {
		if e.Role != string(entity.RolePrimary) {
			continue
		}
		out := make([]FontEntry, 0, len(entries))
		out = append(out, e)
		out = append(out, entries[:i]...)
		return append(out, entries[i+1:]...)
	}
	return entries
}

// fileIndex finds supplied font files for document entries.
type fileIndex struct {
	byFile map[string]*entity.Font
	byName map[string]*entity.Font
}

func newFileIndex(files []*entity.Font) fileIndex {
	idx := fileIndex{
		byFile: make(map[string]*entity.Font, len(files)),
		byName: make(map[string]*entity.Font, len(files)),
	}
	for _, f := range files {
		if f == nil || !f.IsUploaded() {
			continue
		}
		if name := f.FileName(); name != "" {
			if _, ok := idx.byFile[entity.FileKey(name)]; !ok {
				idx.byFile[entity.FileKey(name)] = f
			}
		}
		names := []string{f.Name}
		if meta := f.Metadata(); meta != nil {
			names = append(names, meta.FamilyName)
		}
		for _, n := range names {
			key := entity.NormalizeFontName(n)
			if _, ok := idx.byName[key]; key != "" && !ok {
				idx.byName[key] = f
			}
		}
	}
	return idx
}

func (idx fileIndex) resolve(e FontEntry, keepUnresolved bool) (*entity.Font, bool) {
	if e.System {
		if strings.TrimSpace(e.Name) == "" {
			return nil, false
		}
		return &entity.Font{Name: e.Name, Source: entity.SystemSource{}}, true
	}

	var match *entity.Font
	if e.FileName != "" {
		match = idx.byFile[entity.FileKey(e.FileName)]
	}
	if match == nil {
		match = idx.byName[entity.NormalizeFontName(e.Name)]
	}
	if match != nil {
		src, _ := match.Uploaded()
		if src.FileName == "" {
			src.FileName = e.FileName
		}
		return &entity.Font{Name: e.Name, Source: src}, true
	}

	if keepUnresolved && strings.TrimSpace(e.FileName) != "" {
		return &entity.Font{Name: e.Name, Source: entity.UploadedSource{FileName: e.FileName}}, true
	}
	return nil, false
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
