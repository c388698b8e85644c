package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/logging"
)

// ConfigDocumentUseCase exports and imports portable session documents.
type ConfigDocumentUseCase struct {
	codec port.SessionCodec
	stack *ManageStackUseCase
}

// NewConfigDocumentUseCase creates a new document use case. Font files named
// on import are parsed through stack.
func NewConfigDocumentUseCase(codec port.SessionCodec, stack *ManageStackUseCase) *ConfigDocumentUseCase {
	return &ConfigDocumentUseCase{codec: codec, stack: stack}
}

// Export encodes s.
func (uc *ConfigDocumentUseCase) Export(ctx context.Context, s *entity.Session) ([]byte, error) {
	log := logging.FromContext(ctx)
	log.Debug().Int("fonts", s.Registry.Len()).Msg("exporting config document")

	data, err := uc.codec.Encode(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	return data, nil
}

// ImportInput contains parameters for importing a document.
type ImportInput struct {
	Data    []byte
	Files   []port.FontFile // binaries the document's uploaded entries link to
	Options port.ImportOptions
}

// ImportOutput is the restored session with what could not be linked.
type ImportOutput struct {
	Session       *entity.Session
	Report        port.ImportReport
	ParseFailures []ParseFailure
}

// Import parses the supplied font files and rebuilds the document's session
// on top of them.
func (uc *ConfigDocumentUseCase) Import(ctx context.Context, input ImportInput) (*ImportOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().Int("bytes", len(input.Data)).Int("files", len(input.Files)).Msg("importing config document")

	var (
		fonts    []*entity.Font
		failures []ParseFailure
	)
	if len(input.Files) > 0 {
		var err error
		fonts, failures, err = uc.stack.ParseUploads(ctx, input.Files)
		if err != nil {
			return nil, err
		}
	}

	s, report, err := uc.codec.Decode(input.Data, fonts, input.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	if report.Unlinked() {
		log.Warn().
			Int("dropped_fonts", report.DroppedFonts).
			Int("dropped_overrides", report.DroppedOverrides).
			Int("ghosts", report.Ghosts).
			Strs("unresolved", report.Unresolved).
			Msg("document references fonts that were not supplied")
	}
	log.Info().Int("fonts", report.Fonts).Msg("config document imported")
	return &ImportOutput{Session: s, Report: report, ParseFailures: failures}, nil
}
