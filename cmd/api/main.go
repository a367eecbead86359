package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/handlers"
	"alfredoptarigan/resume-matcher/internal/repositories"
	"alfredoptarigan/resume-matcher/internal/services"
	"alfredoptarigan/resume-matcher/web"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	if !config.HasSubmissionsTable(db) {
		log.Println("⚠️  Table 'submissions' not found. Run `go run ./scripts/init_db.go` before submitting resumes.")
	}

	submissionRepo := repositories.NewSubmissionRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractor := services.NewTextExtractor(
		services.NewPDFParserService(cfg.Extractor.PDFEngine),
		services.NewDocxParserService(),
		cfg.Extractor.UnsupportedPolicy,
	)

	feedbackService, err := services.NewFeedbackService(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize feedback provider: %v", err)
	}
	if cfg.ActiveProvider().APIKey == "" {
		log.Printf("⚠️  No API key set for LLM provider %q. Analysis requests will fail until one is configured.\n", cfg.LLM.Provider)
	}
	log.Printf("✅ Feedback provider %q initialized (model %s)\n", cfg.LLM.Provider, cfg.ActiveProvider().Model)

	analyzerService := services.NewAnalyzerService(
		submissionRepo,
		storageService,
		extractor,
		feedbackService,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService, cfg.Storage.MaxFileSize)
	dashboardHandler := handlers.NewDashboardHandler(submissionRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Matcher",
		Views:        web.NewViewEngine(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * cfg.LLM.Timeout,
		BodyLimit:    handlers.BodyLimit(cfg.Storage.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.Server.Env != "production",
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(helmet.New())

	// Health check
	app.Get("/api/v1/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	analyzeHandler.RegisterRoutes(app)
	dashboardHandler.RegisterRoutes(app)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 Open http://localhost%s to analyze a resume\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
