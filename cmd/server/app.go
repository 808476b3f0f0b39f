package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/api"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/api/middleware"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/config"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/generation"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/gemini"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/imagegen"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/memstore"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/postgres"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/service"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/service/auth"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/store"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/task"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when images are kept in memory.
	db         *sql.DB
	imageStore store.ImageStore

	textGenerator  generation.TextGenerator
	imageGenerator generation.ImageGenerator
	jwtService     auth.JWTService

	studio   *service.Studio
	sessions *service.SessionManager

	scheduler *task.Scheduler
}

// newApplication creates the application with all dependencies initialized
// and the maintenance scheduler started.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	if err = app.setupImageStore(ctx); err != nil {
		return nil, err
	}

	app.textGenerator, err = gemini.NewGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to initialize text generator: %w", err)
	}
	logger.Info("text generator initialized",
		"backend", cfg.LLM.Backend,
		"model", cfg.LLM.ModelName)

	app.imageGenerator, err = imagegen.NewClient(logger, cfg.Images)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to initialize image client: %w", err)
	}
	if cfg.Images.APIKey == "" {
		logger.Warn("image API key not set; carousel image generation will fail until it is configured")
	}

	if cfg.Auth.JWTSecret != "" {
		app.jwtService, err = auth.NewJWTService(cfg.Auth)
		if err != nil {
			app.cleanup()
			return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
		}
		logger.Info("API authentication enabled",
			"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)
	}

	app.studio, err = service.NewStudio(app.textGenerator, app.imageGenerator, app.imageStore, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to initialize studio: %w", err)
	}
	app.sessions = service.NewSessionManager(app.studio, service.NewLogNotifier(logger), logger)

	scheduler := task.NewScheduler(cfg.Sweeper.Schedule, logger,
		task.NewImageSweepTask(app.imageStore, cfg.Sweeper.ImageTTL),
		task.NewSessionSweepTask(app.sessions, cfg.Sweeper.SessionTTL))
	if err := scheduler.Start(); err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to start scheduler: %w", err)
	}
	app.scheduler = scheduler

	return app, nil
}

// setupImageStore opens Postgres and migrates it when a database URL is
// configured, and falls back to an in-memory store otherwise.
func (app *application) setupImageStore(ctx context.Context) error {
	if app.config.Database.URL == "" {
		app.imageStore = memstore.NewImageStore()
		app.logger.Info("using in-memory image store")
		return nil
	}

	db, err := postgres.Open(ctx, app.config.Database.URL, app.logger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := postgres.Migrate(ctx, db, app.logger); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	app.db = db
	app.imageStore = postgres.NewPostgresImageStore(db, app.logger)
	app.logger.Info("using postgres image store")
	return nil
}

// router builds the HTTP handler for the application.
func (app *application) router() http.Handler {
	deps := api.RouterDeps{
		Studio: api.NewStudioHandler(app.studio, app.sessions),
		Images: api.NewImageHandler(app.imageStore),
		Logger: app.logger,
	}
	if app.jwtService != nil {
		deps.Auth = middleware.NewAuthMiddleware(app.jwtService)
	}
	return api.NewRouter(deps)
}

// cleanup releases resources held by the application. It is safe to call
// more than once.
func (app *application) cleanup() {
	if app.scheduler != nil {
		app.scheduler.Stop()
		app.scheduler = nil
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
		app.db = nil
	}
}
