package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/aldayn/dayn_backend/internal/adapters/gemini"
	"github.com/aldayn/dayn_backend/internal/adapters/telegram"
	"github.com/aldayn/dayn_backend/internal/core/services"
	"github.com/aldayn/dayn_backend/internal/handlers"
	"github.com/aldayn/dayn_backend/internal/middleware"
	"github.com/aldayn/dayn_backend/internal/platform/config"
	"github.com/aldayn/dayn_backend/internal/repositories/database/pgsql"
	"github.com/aldayn/dayn_backend/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portssvc "github.com/aldayn/dayn_backend/internal/core/ports/services"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Load the persisted state into memory and build the repositories.
	repos, err := pgsql.NewRepositoryProvider(context.Background(), dbPool)
	if err != nil {
		logger.Error("Failed to load application state", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Application state loaded.")

	// The model clients are optional: without an API key the advisor and the
	// remote channel fall back to their fixed replies.
	var completion portssvc.TextCompletionClient
	var interpreter portssvc.EntryInterpreterClient
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("Failed to create gemini client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		completion = geminiClient
		interpreter = geminiClient
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, completion, interpreter)

	advisorRate, err := limiter.NewRateFromFormatted(cfg.AdvisorRateLimit)
	if err != nil {
		logger.Error("Failed to parse advisor rate limit", slog.String("error", err.Error()))
		os.Exit(1)
	}
	advisorLimiter := limiter.New(limitermemory.NewStore(), advisorRate)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, advisorLimiter)

	// Start the remote entry poller on its own goroutine. It re-reads the
	// stored settings every cycle, so it idles until a bot token is saved.
	pollerCtx := middleware.ContextWithLogger(context.Background(), logger)
	telegramClient := telegram.NewClient(cfg.TelegramAPIBaseURL, cfg.TelegramPollTimeout)
	poller := telegram.NewPoller(telegramClient, serviceContainer.RemoteEntry, serviceContainer.Settings, cfg.TelegramPollInterval, cfg.TelegramPollTimeout)
	go poller.Run(pollerCtx)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies pending schema migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
