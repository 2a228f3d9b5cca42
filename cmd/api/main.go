package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/johnquangdev/voicenotes/docs"
	"github.com/johnquangdev/voicenotes/internal/adapter/handler"
	"github.com/johnquangdev/voicenotes/internal/adapter/repository"
	"github.com/johnquangdev/voicenotes/internal/domain/repositories"
	"github.com/johnquangdev/voicenotes/internal/infrastructure/cache"
	"github.com/johnquangdev/voicenotes/internal/infrastructure/database"
	"github.com/johnquangdev/voicenotes/internal/infrastructure/export"
	httpmw "github.com/johnquangdev/voicenotes/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/voicenotes/internal/infrastructure/storage"
	"github.com/johnquangdev/voicenotes/internal/usecase/pipeline"
	"github.com/johnquangdev/voicenotes/internal/usecase/report"
	pkgai "github.com/johnquangdev/voicenotes/pkg/ai"
	"github.com/johnquangdev/voicenotes/pkg/config"
	pkglogger "github.com/johnquangdev/voicenotes/pkg/logger"
	pkgvalidator "github.com/johnquangdev/voicenotes/pkg/validator"
)

// @title           VoiceNotes API
// @version         1.0
// @description     Turns lecture audio into transcripts, summaries, keywords, notes, flashcards and quizzes, exportable as PDF or DOCX.

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// Reject bodies far above the upload limit before they are buffered
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", cfg.Server.MaxUploadMB+1)))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, httpmw.SessionHeader, "Cookie"},
		ExposeHeaders:    []string{httpmw.SessionHeader, echo.HeaderContentDisposition},
		AllowCredentials: true,
	}))

	log.Println("🔧 Initializing dependencies...")

	healthChecks := map[string]handler.HealthCheck{}

	// Result store
	var kv cache.KV
	switch cfg.Store.Backend {
	case "redis":
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		kv = cache.NewRedisStore(redisClient)
		healthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	default:
		log.Println("📦 Using in-memory result store")
		memory := cache.NewMemoryStore()
		defer memory.Close()
		kv = memory
	}
	resultStore := cache.NewResultStore(kv, cfg.Store.TTL)

	// Run history (optional)
	var runRepo repositories.StudyRunRepository
	if cfg.Database.Enabled {
		db := connectDatabase(cfg)
		defer database.CloseDB(db)
		runRepo = repository.NewStudyRunRepository(db)
		healthChecks["database"] = func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	} else {
		log.Println("🗄️  Database disabled; run history endpoints return 501")
	}

	// Report storage (optional)
	var uploader report.Uploader
	if cfg.Storage.Enabled {
		log.Println("☁️  Connecting to MinIO...")
		minioClient, err := storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
		uploader = minioClient
		healthChecks["storage"] = minioClient.Ping
	}

	// Pipeline
	log.Println("🤖 Initializing AI components...")
	models := pkgai.NewRegistry(cfg, logger)
	pipelineService := pipeline.NewService(models, resultStore, runRepo, cfg.Pipeline, logger)
	pdfFont := export.ResolveFontPath(cfg.Pipeline.PDFFontPath)
	if pdfFont == "" {
		logger.Warn("⚠️ No TrueType font found, PDF reports are limited to Latin-1")
	}
	reportService := report.NewService(cfg.Pipeline.OutputDir, uploader, logger).WithPDFFont(pdfFont)

	studyHandler := handler.NewStudy(pipelineService, reportService, cfg.Server.MaxUploadMB, uploader != nil, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, studyHandler)
	for name, check := range healthChecks {
		router.AddHealthCheck(name, check)
	}
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)
		log.Printf("📚 API docs: http://%s/swagger/index.html", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

func connectDatabase(cfg *config.Config) *gorm.DB {
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or run cmd/migrate.")
		}
		log.Println("🔄 Running GORM AutoMigrate (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run AutoMigrate: %v", err)
		}
	} else {
		log.Println("🔄 Skipping GORM AutoMigrate; use cmd/migrate for schema migrations")
	}
	return db
}
