package usecase

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/logging"
)

// ManageStackUseCase feeds font files into a session's registry.
type ManageStackUseCase struct {
	parser      port.FontParser
	files       port.FontFileSource
	detector    port.SystemFontDetector
	concurrency int
}

// NewManageStackUseCase creates a new stack management use case. detector may
// be nil; concurrency below 1 uses GOMAXPROCS.
func NewManageStackUseCase(
	parser port.FontParser,
	files port.FontFileSource,
	detector port.SystemFontDetector,
	concurrency int,
) *ManageStackUseCase {
	if concurrency < 1 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	return &ManageStackUseCase{
		parser:      parser,
		files:       files,
		detector:    detector,
		concurrency: concurrency,
	}
}

// ParseFailure is a file that could not be read or parsed.
type ParseFailure struct {
	File port.FontFile
	Err  error
}

// ParseUploads reads and parses files in parallel. The returned fonts keep the
// input order; files that fail are reported and left out. Only cancellation
// of ctx aborts the batch.
func (uc *ManageStackUseCase) ParseUploads(ctx context.Context, files []port.FontFile) ([]*entity.Font, []ParseFailure, error) {
	log := logging.FromContext(ctx)
	log.Debug().Int("files", len(files)).Int("concurrency", uc.concurrency).Msg("parsing font files")

	fonts := make([]*entity.Font, len(files))
	errs := make([]error, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fonts[i], errs[i] = uc.parseFile(gctx, file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to parse font files: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to parse font files: %w", err)
	}

	parsed := make([]*entity.Font, 0, len(files))
	var failures []ParseFailure
	for i, file := range files {
		if errs[i] != nil {
			log.Warn().Str("file", file.Name).Err(errs[i]).Msg("skipping font file")
			failures = append(failures, ParseFailure{File: file, Err: errs[i]})
			continue
		}
		parsed = append(parsed, fonts[i])
	}
	return parsed, failures, nil
}

func (uc *ManageStackUseCase) parseFile(ctx context.Context, file port.FontFile) (*entity.Font, error) {
	data, err := uc.files.Read(ctx, file)
	if err != nil {
		return nil, err
	}
	meta, err := uc.parser.Parse(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.Name, err)
	}
	return &entity.Font{
		Name: meta.FamilyName,
		Source: entity.UploadedSource{
			FileName: file.Name,
			URL:      file.URL,
			Metadata: &meta,
		},
	}, nil
}

// AddFilesOutput summarizes an upload batch.
type AddFilesOutput struct {
	entity.BatchResult
	ParseFailures []ParseFailure
}

// AddFallbackFiles parses files and appends them as generic fallbacks in
// input order.
func (uc *ManageStackUseCase) AddFallbackFiles(ctx context.Context, s *entity.Session, files []port.FontFile) (*AddFilesOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().Int("files", len(files)).Msg("adding fallback files")

	fonts, failures, err := uc.ParseUploads(ctx, files)
	if err != nil {
		return nil, err
	}

	res := s.Registry.AddFallbackBatch(fonts)
	for _, r := range res.Rejected {
		log.Warn().Str("font", r.Name).Str("reason", string(entity.ReasonOf(r.Err))).Msg("font rejected")
	}

	log.Info().
		Int("added", len(res.Added)).
		Int("augmented", len(res.Augmented)).
		Int("duplicates", res.Duplicates).
		Int("failed", len(failures)+len(res.Rejected)).
		Msg("fallback files added")
	return &AddFilesOutput{BatchResult: res, ParseFailures: failures}, nil
}

// LoadDirectory adds every font file of dir as a fallback.
func (uc *ManageStackUseCase) LoadDirectory(ctx context.Context, s *entity.Session, dir string) (*AddFilesOutput, error) {
	logging.FromContext(ctx).Debug().Str("dir", dir).Msg("loading font directory")

	files, err := uc.files.List(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list fonts: %w", err)
	}
	return uc.AddFallbackFiles(ctx, s, files)
}

// LoadPrimary parses file and installs it as the primary font. Overrides
// naming the replaced primary are dropped.
func (uc *ManageStackUseCase) LoadPrimary(ctx context.Context, s *entity.Session, file port.FontFile) (entity.FontID, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("file", file.Name).Msg("loading primary font")

	font, err := uc.parseFile(ctx, file)
	if err != nil {
		return "", fmt.Errorf("failed to parse primary font: %w", err)
	}
	src, _ := font.Uploaded()

	previous := s.Registry.Primary()
	id, err := s.Registry.Load(font.Name, src)
	if err != nil {
		return "", fmt.Errorf("failed to load primary font: %w", err)
	}
	if previous != nil {
		s.Overrides.ForgetFont(previous.ID)
	}

	log.Info().Str("font", font.Name).Str("id", string(id)).Msg("primary font loaded")
	return id, nil
}

// AddLanguageFile parses file and adds it as a language-specific or
// primary-override entry, pinned to langs.
func (uc *ManageStackUseCase) AddLanguageFile(
	ctx context.Context,
	s *entity.Session,
	file port.FontFile,
	kind entity.CloneKind,
	langs []entity.LanguageID,
) (entity.FontID, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("file", file.Name).Str("kind", string(kind)).Msg("adding language font")

	font, err := uc.parseFile(ctx, file)
	if err != nil {
		return "", fmt.Errorf("failed to parse language font: %w", err)
	}
	id, err := s.Registry.AddLanguageFont(font, kind)
	if err != nil {
		return "", fmt.Errorf("failed to add language font: %w", err)
	}

	pin := s.Overrides.SetFallbackOverride
	if kind == entity.ClonePrimaryOverride {
		pin = s.Overrides.SetPrimaryOverride
	}
	for _, lang := range langs {
		if err := pin(lang, id); err != nil {
			return "", fmt.Errorf("failed to pin %s: %w", lang, err)
		}
	}

	log.Info().Str("font", font.Name).Str("id", string(id)).Int("languages", len(langs)).Msg("language font added")
	return id, nil
}

// AddSystemFontsOutput summarizes AddSystemFonts.
type AddSystemFontsOutput struct {
	entity.BatchResult
	NotInstalled []string
}

// AddSystemFonts appends system font families. Families the detector cannot
// find locally are still added and reported.
func (uc *ManageStackUseCase) AddSystemFonts(ctx context.Context, s *entity.Session, names []string) (*AddSystemFontsOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().Strs("families", names).Msg("adding system fonts")

	fonts := make([]*entity.Font, len(names))
	out := &AddSystemFontsOutput{}
	for i, name := range names {
		fonts[i] = &entity.Font{Name: name, Source: entity.SystemSource{}}
		if uc.detector != nil && !uc.detector.IsInstalled(ctx, name) {
			log.Warn().Str("family", name).Msg("system font not installed locally")
			out.NotInstalled = append(out.NotInstalled, name)
		}
	}
	out.BatchResult = s.Registry.AddFallbackBatch(fonts)

	log.Info().Int("added", len(out.Added)).Int("duplicates", out.Duplicates).Msg("system fonts added")
	return out, nil
}

// RemoveFont removes an entry with its clones and their overrides.
func (uc *ManageStackUseCase) RemoveFont(ctx context.Context, s *entity.Session, id entity.FontID) ([]entity.FontID, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("id", string(id)).Msg("removing font")

	removed, err := s.RemoveFont(id)
	if err != nil {
		return nil, fmt.Errorf("failed to remove font: %w", err)
	}

	log.Info().Str("id", string(id)).Int("removed", len(removed)).Msg("font removed")
	return removed, nil
}
