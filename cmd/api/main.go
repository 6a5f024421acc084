// @title Quizmark API
// @version 1.0
// @description Parses, formats, validates and grades quizzes written in the quiz text format, and stores quiz drafts.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizmark/internal/adapter"
	"quizmark/internal/cache"
	"quizmark/internal/config"
	"quizmark/internal/domain"
	"quizmark/internal/handler"
	"quizmark/internal/logger"
	"quizmark/internal/middleware"
	"quizmark/internal/service"
	"quizmark/internal/validation"

	_ "quizmark/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer func() { _ = logger.Sync() }()

	// Redis backs the parse cache and the draft store. Without it the text
	// endpoints keep working and drafts answer 503.
	var cacheStore domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, running without cache", zap.Error(err), zap.String("address", cfg.Redis.Address))
	} else {
		defer func() { _ = redisClient.Close() }()
		cacheStore = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	}

	// Initialize services
	validator := validation.NewValidator(cfg.Parser.MaxTextBytes)
	quizTextService := service.NewQuizTextService(cacheStore, validator, cfg)
	draftService := service.NewDraftService(cacheStore, quizTextService, validator, cfg)

	// Initialize handlers
	quizTextHandler := handler.NewQuizTextHandler(quizTextService)
	draftHandler := handler.NewDraftHandler(draftService)
	healthHandler := handler.NewHealthHandler(cacheStore)
	validationMiddleware := middleware.NewValidationMiddleware(validator)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		// Batch requests carry up to batch.max_texts texts.
		BodyLimit: cfg.Parser.MaxTextBytes*cfg.Batch.MaxTexts + 64*1024,
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", healthHandler.Check)

	apiGroup := app.Group("/api")

	quizTextGroup := apiGroup.Group("/quiz-text")
	quizTextGroup.Post("/parse", quizTextHandler.Parse)
	quizTextGroup.Post("/format", quizTextHandler.Format)
	quizTextGroup.Post("/validate", quizTextHandler.Validate)
	quizTextGroup.Post("/batch", quizTextHandler.ParseBatch)
	quizTextGroup.Post("/grade", quizTextHandler.Grade)

	apiGroup.Post("/drafts", draftHandler.Create)
	apiGroup.Get("/drafts/:id", validationMiddleware.ValidateDraftID(), draftHandler.Get)
	apiGroup.Put("/drafts/:id", validationMiddleware.ValidateDraftID(), draftHandler.Update)
	apiGroup.Delete("/drafts/:id", validationMiddleware.ValidateDraftID(), draftHandler.Delete)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(cfg.Addr()); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
