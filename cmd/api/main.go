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

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/mockmate/mockmate-api/pkg/validator"

	_ "github.com/mockmate/mockmate-api/docs"
	"github.com/mockmate/mockmate-api/internal/adapter/handler"
	"github.com/mockmate/mockmate-api/internal/adapter/repository"
	"github.com/mockmate/mockmate-api/internal/infrastructure/cache"
	"github.com/mockmate/mockmate-api/internal/infrastructure/database"
	aiuse "github.com/mockmate/mockmate-api/internal/usecase/ai"
	"github.com/mockmate/mockmate-api/internal/usecase/auth"
	"github.com/mockmate/mockmate-api/internal/usecase/interview"
	pkgai "github.com/mockmate/mockmate-api/pkg/ai"
	"github.com/mockmate/mockmate-api/pkg/config"
	"github.com/mockmate/mockmate-api/pkg/jwt"
)

// @title           MockMate API
// @version         1.0
// @description     AI-powered mock interview API with question generation, answer evaluation and feedback reports

// @license.name  MIT

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

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

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize Redis; fall back to the in-process cache so a missing Redis
	// never blocks startup in development.
	log.Println("📦 Connecting to Redis...")
	var userCache auth.UserCache
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Printf("⚠️  Redis unavailable (%v), using in-memory user cache", err)
		userCache = cache.NewMemoryUserCache(5 * time.Minute)
	} else {
		defer redisClient.Close()
		userCache = cache.NewUserCache(redisClient, 5*time.Minute, logger)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)

	// Select the AI provider once at startup
	log.Println("🤖 Initializing AI provider...")
	var chatClient aiuse.ChatClient
	if cfg.UseGroq() {
		chatClient = pkgai.NewGroqClient(&cfg.Groq)
		log.Printf("✅ Using Groq provider (model %s)", cfg.Groq.Model)
	} else {
		chatClient = pkgai.NewOllamaClient(&pkgai.OllamaConfig{
			BaseURL: cfg.Ollama.BaseURL,
			Model:   cfg.Ollama.Model,
		})
		log.Printf("✅ Using Ollama provider at %s (model %s)", cfg.Ollama.BaseURL, cfg.Ollama.Model)
	}
	provider := aiuse.NewProvider(chatClient, logger)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize services
	log.Println("✨ Initializing services...")
	authService := auth.NewService(userRepo, jwtManager, userCache, logger)
	interviewService := interview.NewService(interviewRepo, questionRepo, answerRepo, provider, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuth(authService, logger)
	interviewHandler := handler.NewInterview(interviewService, logger)
	aiDebugHandler := handler.NewAIDebug(provider, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, authService, authHandler, interviewHandler, aiDebugHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
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
