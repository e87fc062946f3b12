package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/facturly/facturly-backend/internal/core/services"
	"github.com/facturly/facturly-backend/internal/handlers"
	"github.com/facturly/facturly-backend/internal/middleware"
	"github.com/facturly/facturly-backend/internal/platform/config"
	"github.com/facturly/facturly-backend/internal/repositories/database/pgsql"
	"github.com/facturly/facturly-backend/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		logger.Error("Failed to create uploads directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(repos)
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending schema migrations using a temporary
// database/sql connection over the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
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

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
