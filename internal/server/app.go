// Package server assembles and runs the ExamHub API server: it opens
// PostgreSQL, applies migrations, builds the services and serves the HTTP
// API until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/examhub/internal/logging"
	"github.com/dmitrijs2005/examhub/internal/server/auth"
	"github.com/dmitrijs2005/examhub/internal/server/config"
	"github.com/dmitrijs2005/examhub/internal/server/httpapi"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/examhub/internal/server/services"
	"github.com/dmitrijs2005/examhub/internal/server/storage"
)

var ErrNoBotToken = errors.New("bot token is required")

// Seams for tests.
var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open("pgx", dsn)
	}
	newRepositoryManager = func() repomanager.RepositoryManager {
		return repomanager.NewPostgresRepositoryManager()
	}
	newPresigner = func(ctx context.Context, cfg storage.Config) (services.Presigner, error) {
		return storage.NewPresigner(ctx, cfg)
	}
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.HTTPServer
}

func storageConfig(c *config.Config) storage.Config {
	public := c.PublicBaseURL
	if public == "" {
		public = c.S3BaseEndpoint
	}
	return storage.Config{
		Endpoint:      c.S3BaseEndpoint,
		Region:        c.S3Region,
		AccessKey:     c.S3RootUser,
		SecretKey:     c.S3RootPassword,
		Bucket:        c.S3Bucket,
		PublicBaseURL: public,
		Expires:       c.PresignExpiry,
	}
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	if c.BotToken == "" {
		return nil, ErrNoBotToken
	}

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := newRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	presigner, err := newPresigner(ctx, storageConfig(c))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	router := httpapi.NewRouter(logger, httpapi.Deps{
		Validator: auth.NewValidator(c.BotToken, c.InitDataMaxAge),
		Users:     services.NewUserService(db, rm),
		Catalog:   services.NewCatalogService(db, rm),
		Exams:     services.NewExamService(db, rm),
		Uploads:   services.NewUploadService(presigner),
		Reports:   services.NewReportService(db, rm, c.ReportHideThreshold),
	}, httpapi.Options{
		GinMode:        c.GinMode,
		AllowedOrigins: c.AllowedOrigins,
		RateLimit:      c.RateLimit,
		RateBurst:      c.RateBurst,
	})

	return &App{
		config: c,
		logger: logger,
		db:     db,
		server: httpapi.NewHTTPServer(c.ListenAddr, logger, router, c.ShutdownTimeout),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is done or a termination signal arrives.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
