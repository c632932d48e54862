package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log-catalog/internal/catalog"
	internalhttp "log-catalog/internal/http"
	"log-catalog/internal/ingestors"
	"log-catalog/internal/parsers"
	"log-catalog/internal/shared/configs"
	"log-catalog/internal/shared/filestorages"
	"log-catalog/internal/shared/loggers"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	ingestionService ingestors.IngestionService
	logCatalog       *catalog.ProfiledCatalog
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "log-catalog").
		Logger()

	// Initialize log source
	logSource, err := filestorages.NewFileStorage(config.LogSource.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize log source: %w", err)
	}

	// Initialize catalog
	parser, err := parsers.NewLineParserFromTimezone(config.Parser.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize parser: %w", err)
	}
	innerCatalog, err := catalog.NewLogCatalog(parser)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog: %w", err)
	}
	logCatalog := catalog.NewProfiledCatalog(innerCatalog)

	// Initialize ingestionService
	ingestionService := ingestors.NewIngestionService(logCatalog, logSource, config.Ingestion.MaxBatchBytes)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, logCatalog, logCatalog, parser.Location(), httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:           config,
		appLogger:        appLogger,
		server:           server,
		ingestionService: ingestionService,
		logCatalog:       logCatalog,
	}, nil
}

// Handler exposes the HTTP router, mainly for tests.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// LoadSeedFiles ingests the configured seed files. A file that cannot be read fails startup;
// malformed lines inside a file are only reported.
func (app *App) LoadSeedFiles(ctx context.Context) error {
	seedLogger := app.appLogger.With().Str(loggers.FieldComponent, "seed").Logger()
	ctx = seedLogger.WithContext(ctx)

	for _, key := range app.config.LogSource.SeedFiles {
		result, err := app.ingestionService.IngestFile(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to load seed file %q: %w", key, err)
		}
		seedLogger.Info().
			Str(loggers.FieldSourceKey, key).
			Int(loggers.FieldRecordCount, result.Ingested).
			Int(loggers.FieldFailureCount, len(result.Failures)).
			Msg("seed file loaded")
	}
	return nil
}

// Start loads the seed files and starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting log-catalog service on port %d (log_level=%s, timezone=%s, log_source_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Parser.Timezone,
			app.config.LogSource.RootDir)

	if err := app.LoadSeedFiles(context.Background()); err != nil {
		return err
	}

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application and logs the final profiling report.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	for _, profile := range app.logCatalog.Profiles() {
		app.appLogger.Info().Msg(profile.Report)
	}
	return nil
}
