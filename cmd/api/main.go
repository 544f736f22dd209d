package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/alexzlotnikov/pitchdeeper/internal/config"
	"github.com/alexzlotnikov/pitchdeeper/internal/handlers"
	"github.com/alexzlotnikov/pitchdeeper/internal/services"
	"github.com/alexzlotnikov/pitchdeeper/web"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize services
	validator := services.NewUploadValidator(cfg.Upload.MaxFileSize)

	var completion services.CompletionService
	switch cfg.Completion.Provider {
	case config.ProviderGemini:
		completion = services.NewGeminiService(cfg.Completion)
	default:
		completion = services.NewGroqService(cfg.Completion)
	}
	log.Printf("✅ Completion relay initialized (provider=%s model=%s)", cfg.Completion.Provider, cfg.Completion.Model)

	analyzer := services.NewAnalyzerService(completion)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(cfg, validator, analyzer)
	log.Println("✅ Handlers initialized")

	// Create Fiber app. BodyLimit sits above the upload cap so oversized
	// files reach the size check and get a FILE_TOO_LARGE code instead of
	// a bare 413 from the transport.
	app := fiber.New(fiber.Config{
		AppName:      "PitchDeeper AI API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		BodyLimit:    int(cfg.Upload.MaxFileSize) * 2,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// API routes
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze-pitch", analyzeHandler.HandleAnalyzePitch)

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "PitchDeeper AI API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/analyze-pitch",
				"GET /api/health",
			},
		})
	})

	// Static frontend
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(web.Static),
		PathPrefix: "static",
	}))

	pages := map[string]string{
		"/":        "static/index.html",
		"/privacy": "static/privacy.html",
		"/terms":   "static/terms.html",
		"/contact": "static/contact.html",
	}
	for route, file := range pages {
		file := file
		app.Get(route, func(c *fiber.Ctx) error {
			body, err := web.Static.ReadFile(file)
			if err != nil {
				return fiber.ErrNotFound
			}
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return c.Send(body)
		})
	}

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

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
