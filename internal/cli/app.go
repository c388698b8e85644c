// Package cli wires the fontstack use cases for the command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/bnema/fontstack/internal/application/usecase"
	"github.com/bnema/fontstack/internal/cli/styles"
	"github.com/bnema/fontstack/internal/infrastructure/config"
	"github.com/bnema/fontstack/internal/infrastructure/cssexport"
	"github.com/bnema/fontstack/internal/infrastructure/document"
	"github.com/bnema/fontstack/internal/infrastructure/filesystem"
	"github.com/bnema/fontstack/internal/infrastructure/fontparse"
	"github.com/bnema/fontstack/internal/infrastructure/fonts"
	"github.com/bnema/fontstack/internal/infrastructure/languages"
	"github.com/bnema/fontstack/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/fontstack/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme

	Catalog  *languages.Catalog
	Files    *filesystem.FontSource
	Detector *fonts.Detector
	Schema   *config.SchemaProvider
	fs       afero.Fs
	db       *sqlite.LazyDB

	// Use cases
	StackUC        *usecase.ManageStackUseCase
	CSSUC          *usecase.ExportCSSUseCase
	InspectUC      *usecase.InspectStackUseCase
	DocumentUC     *usecase.ConfigDocumentUseCase
	ProfilesUC     *usecase.ManageProfilesUseCase
	ConfigSchemaUC *usecase.GetConfigSchemaUseCase

	// Context with logger
	ctx context.Context
}

// Options overrides the collaborators of NewAppWith.
type Options struct {
	Fs        afero.Fs  // font files; OS filesystem when nil
	LogOutput io.Writer // stderr when nil
}

// NewApp loads the configuration and creates the CLI application.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	app := NewAppWith(mgr.Get(), Options{})
	app.ConfigManager = mgr
	return app, nil
}

// NewAppWith creates the CLI application from an already loaded configuration.
func NewAppWith(cfg *config.Config, opts Options) *App {
	logCfg := logging.ApplyEnv(cfg.LoggerConfig())
	logCfg.Output = opts.LogOutput
	if logCfg.Output == nil {
		logCfg.Output = os.Stderr
	}
	logger := logging.New(logCfg)
	ctx := logging.WithContext(context.Background(), logger)

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	catalog := languages.Default()
	files := filesystem.New(fs, cfg.Fonts.URLPrefix)
	detector := fonts.NewDetector()
	codec := document.NewCodec(nil)
	db := sqlite.NewLazyDB(cfg.Database.Path)

	stackUC := usecase.NewManageStackUseCase(fontparse.New(), files, detector, cfg.Fonts.ParseConcurrency)
	schema := config.NewSchemaProvider()

	logger.Debug().Str("db_path", cfg.Database.Path).Str("fonts", cfg.Fonts.Directory).Msg("cli app initialized")

	return &App{
		Config:         cfg,
		Theme:          styles.NewTheme(),
		Catalog:        catalog,
		Files:          files,
		Detector:       detector,
		Schema:         schema,
		fs:             fs,
		db:             db,
		StackUC:        stackUC,
		CSSUC:          usecase.NewExportCSSUseCase(catalog, cssexport.New()),
		InspectUC:      usecase.NewInspectStackUseCase(catalog),
		DocumentUC:     usecase.NewConfigDocumentUseCase(codec, stackUC),
		ProfilesUC:     usecase.NewManageProfilesUseCase(sqlite.NewProfileRepository(db), codec),
		ConfigSchemaUC: usecase.NewGetConfigSchemaUseCase(schema),
		ctx:            ctx,
	}
}

// Reconfigure swaps in a reloaded configuration. Use cases that depend on
// configuration values are rebuilt; the profile database stays open.
func (a *App) Reconfigure(cfg *config.Config) {
	a.Config = cfg
	a.Files = filesystem.New(a.fs, cfg.Fonts.URLPrefix)
	a.StackUC = usecase.NewManageStackUseCase(fontparse.New(), a.Files, a.Detector, cfg.Fonts.ParseConcurrency)
	a.DocumentUC = usecase.NewConfigDocumentUseCase(document.NewCodec(nil), a.StackUC)
	logging.FromContext(a.ctx).Info().Msg("configuration reloaded")
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
