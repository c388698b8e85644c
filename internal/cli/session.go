package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/application/usecase"
	"github.com/bnema/fontstack/internal/domain/entity"
	domainvalidation "github.com/bnema/fontstack/internal/domain/validation"
	"github.com/bnema/fontstack/internal/logging"
)

// StackOptions describes where the session of a command comes from. A
// document or a profile is imported against the font files; otherwise a
// fresh session is assembled from the files and the configuration.
type StackOptions struct {
	Document       string // path of a configuration document
	Profile        string // name of a saved profile
	FontsDir       string
	Primary        string   // primary font file
	Fallbacks      []string // fallback font files, in order
	SystemFonts    []string
	LanguagePins   []LanguagePin
	Languages      []string
	PrimaryLangs   []string
	KeepUnresolved bool
}

// Notices collects what went wrong without failing the build.
type Notices struct {
	ParseFailures []usecase.ParseFailure
	Batches       []entity.BatchResult
	NotInstalled  []string
	Report        *port.ImportReport
}

// BuildResult is a session ready for a command.
type BuildResult struct {
	Session *entity.Session
	Notices Notices
}

// BuildSession creates the session described by opts.
func (a *App) BuildSession(ctx context.Context, opts StackOptions) (*BuildResult, error) {
	log := logging.FromContext(ctx)

	if opts.Document != "" && opts.Profile != "" {
		return nil, fmt.Errorf("--doc and --profile are exclusive: %w", entity.ErrInvalidValue)
	}
	if opts.FontsDir == "" {
		opts.FontsDir = a.Config.Fonts.Directory
	}

	var (
		res *BuildResult
		err error
	)
	switch {
	case opts.Document != "" || opts.Profile != "":
		res, err = a.importSession(ctx, opts)
	default:
		res, err = a.assembleSession(ctx, opts)
	}
	if err != nil {
		return nil, err
	}

	if err := a.applyLanguages(res.Session, opts.Languages, false); err != nil {
		return nil, err
	}
	if err := a.applyLanguages(res.Session, opts.PrimaryLangs, true); err != nil {
		return nil, err
	}

	log.Debug().Int("fonts", res.Session.Registry.Len()).Msg("session built")
	return res, nil
}

func (a *App) importSession(ctx context.Context, opts StackOptions) (*BuildResult, error) {
	files, err := a.collectFiles(ctx, opts)
	if err != nil {
		return nil, err
	}
	importOpts := port.ImportOptions{KeepUnresolved: opts.KeepUnresolved}

	if opts.Profile != "" {
		fonts, failures, err := a.StackUC.ParseUploads(ctx, files)
		if err != nil {
			return nil, err
		}
		s, report, err := a.ProfilesUC.Load(ctx, opts.Profile, fonts, importOpts)
		if err != nil {
			return nil, err
		}
		return &BuildResult{Session: s, Notices: Notices{ParseFailures: failures, Report: &report}}, nil
	}

	data, err := os.ReadFile(opts.Document)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	out, err := a.DocumentUC.Import(ctx, usecase.ImportInput{Data: data, Files: files, Options: importOpts})
	if err != nil {
		return nil, err
	}
	return &BuildResult{
		Session: out.Session,
		Notices: Notices{ParseFailures: out.ParseFailures, Report: &out.Report},
	}, nil
}

// collectFiles lists the fonts directory followed by the explicit files.
func (a *App) collectFiles(ctx context.Context, opts StackOptions) ([]port.FontFile, error) {
	var files []port.FontFile
	if opts.FontsDir != "" {
		listed, err := a.Files.List(ctx, opts.FontsDir)
		if err != nil {
			return nil, err
		}
		files = append(files, listed...)
	}
	paths := append([]string{}, opts.Fallbacks...)
	if opts.Primary != "" {
		paths = append([]string{opts.Primary}, paths...)
	}
	for _, pin := range opts.LanguagePins {
		paths = append(paths, pin.Path)
	}
	for _, path := range paths {
		f, err := a.Files.FileFor(path)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func (a *App) assembleSession(ctx context.Context, opts StackOptions) (*BuildResult, error) {
	s, err := a.Config.NewSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	res := &BuildResult{Session: s}

	if opts.Primary != "" {
		file, err := a.Files.FileFor(opts.Primary)
		if err != nil {
			return nil, err
		}
		if _, err := a.StackUC.LoadPrimary(ctx, s, file); err != nil {
			return nil, err
		}
	}

	if opts.FontsDir != "" {
		out, err := a.StackUC.LoadDirectory(ctx, s, opts.FontsDir)
		if err != nil {
			return nil, err
		}
		res.Notices.add(out)
	}

	if len(opts.Fallbacks) > 0 {
		files := make([]port.FontFile, 0, len(opts.Fallbacks))
		for _, path := range opts.Fallbacks {
			f, err := a.Files.FileFor(path)
			if err != nil {
				return nil, err
			}
			files = append(files, f)
		}
		out, err := a.StackUC.AddFallbackFiles(ctx, s, files)
		if err != nil {
			return nil, err
		}
		res.Notices.add(out)
	}

	if s.Registry.Len() == 0 {
		return nil, errors.New("no font files: pass --primary, --fonts or set fonts.directory")
	}

	systemFonts := append(append([]string{}, a.Config.Fonts.SystemFallbacks...), opts.SystemFonts...)
	if len(systemFonts) > 0 {
		out, err := a.StackUC.AddSystemFonts(ctx, s, systemFonts)
		if err != nil {
			return nil, err
		}
		res.Notices.Batches = append(res.Notices.Batches, out.BatchResult)
		res.Notices.NotInstalled = append(res.Notices.NotInstalled, out.NotInstalled...)
	}

	for _, pin := range opts.LanguagePins {
		file, err := a.Files.FileFor(pin.Path)
		if err != nil {
			return nil, err
		}
		langs, err := a.canonicalLanguages(pin.Languages)
		if err != nil {
			return nil, err
		}
		if _, err := a.StackUC.AddLanguageFile(ctx, s, file, pin.Kind, langs); err != nil {
			return nil, err
		}
		if err := a.applyLanguages(s, pin.Languages, pin.Kind == entity.ClonePrimaryOverride); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (n *Notices) add(out *usecase.AddFilesOutput) {
	n.ParseFailures = append(n.ParseFailures, out.ParseFailures...)
	n.Batches = append(n.Batches, out.BatchResult)
}

func (a *App) applyLanguages(s *entity.Session, raw []string, primary bool) error {
	langs, err := a.canonicalLanguages(raw)
	if err != nil {
		return err
	}
	for _, lang := range langs {
		if err := s.AddLanguage(lang, primary); err != nil {
			return err
		}
	}
	return nil
}

// canonicalLanguages maps user tags such as "pt_BR" to catalog ids. Tags
// outside the catalog are kept as given once they pass validation.
func (a *App) canonicalLanguages(raw []string) ([]entity.LanguageID, error) {
	out := make([]entity.LanguageID, 0, len(raw))
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if lang, ok := a.Catalog.Match(tag); ok {
			out = append(out, lang.ID)
			continue
		}
		if errs := domainvalidation.ValidateLanguageID("language", tag); len(errs) > 0 {
			return nil, fmt.Errorf("%s: %w", strings.Join(errs, "; "), entity.ErrInvalidValue)
		}
		out = append(out, entity.LanguageID(tag))
	}
	return out, nil
}
