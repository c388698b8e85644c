package port

import (
	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/domain/service"
)

// CSSOptions selects the sections of a generated stylesheet.
type CSSOptions struct {
	IncludeFontFace bool
	UseCSSVariables bool
	IncludeComments bool
	PrettyPrint     bool
}

// StylesheetRenderer renders a resolved snapshot to CSS text.
// Identical inputs must produce byte-identical output.
type StylesheetRenderer interface {
	Render(snap service.ResolvedSnapshot, languages []entity.Language, opts CSSOptions) string
}

// ImportOptions controls how a configuration document is linked to font files.
type ImportOptions struct {
	// KeepUnresolved declares fonts without a matching file as ghosts
	// instead of dropping them.
	KeepUnresolved bool
}

// ImportReport lists what an import could not link.
type ImportReport struct {
	Fonts            int      // entries restored
	Ghosts           int      // entries restored without glyph data
	DroppedFonts     int      // entries without a matching file
	DroppedOverrides int      // overrides naming a dropped entry
	Unresolved       []string // names of dropped or ghost entries, document order
}

// Unlinked reports whether anything in the document was not matched to a file.
func (r ImportReport) Unlinked() bool {
	return r.DroppedFonts > 0 || r.DroppedOverrides > 0 || r.Ghosts > 0
}

// SessionCodec converts a session to and from its portable document.
// Documents reference fonts by file name and never embed binaries.
type SessionCodec interface {
	Encode(s *entity.Session) ([]byte, error)
	Decode(data []byte, files []*entity.Font, opts ImportOptions) (*entity.Session, ImportReport, error)
}
