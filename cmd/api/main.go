package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pdfscan/internal/auth"
	"pdfscan/internal/config"
	"pdfscan/internal/database"
	"pdfscan/internal/database/migration"
	"pdfscan/internal/extract"
	handlers "pdfscan/internal/http/handler"
	"pdfscan/internal/http/middleware"
	"pdfscan/internal/otel"
	"pdfscan/internal/repository/memory"
	"pdfscan/internal/repository/postgres"
	"pdfscan/internal/service"
	"pdfscan/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	tokens := auth.NewManager(cfg.JWTSecret)

	// The document and user stores are in-memory; PostgreSQL only backs the
	// contact and workspace routes, and both it and the archive are optional.
	caps := handlers.Capabilities{
		Relational: cfg.HasDatabase(),
		Archive:    cfg.HasArchive(),
	}

	svcs := handlers.Services{
		Auth: service.NewAuthService(memory.NewUserMemory(), tokens),
	}

	var archive storage.Archive
	if caps.Archive {
		archive, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	}
	svcs.PDF = service.NewPDFService(memory.NewDocumentMemory(), extract.NewDocconvExtractor(), archive)

	var db *sql.DB
	if caps.Relational {
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := migration.Run(ctx, db); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}

		svcs.Contacts = service.NewContactService(postgres.NewContactPostgres(db))
		svcs.Workspaces = service.NewWorkspaceService(postgres.NewWorkspacePostgres(db))
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.UploadLimitBytes,
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, db, tokens, svcs, caps)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
