package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finpulse/internal/api"
	"finpulse/internal/api/handlers"
	"finpulse/internal/repository"
	"finpulse/internal/service"
	"finpulse/pkg/auth"
	"finpulse/pkg/config"
	"finpulse/pkg/logger"
	"finpulse/pkg/postgres"

	"go.uber.org/zap"
)

// @title FinPulse API
// @version 1.0
// @description Behavioral persona classification and guarded product recommendations over bank transaction histories

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting FinPulse service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	ledgerRepo := repository.NewLedgerRepository(db, appLogger)
	auditRepo := repository.NewAuditRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)

	llmService, err := service.NewLLMService(&cfg.GigaChat, appLogger)
	if err != nil {
		// The analysis pipeline degrades to the templated fallback
		// message when no generator is available.
		appLogger.Warn("LLM service unavailable, using fallback messages", zap.Error(err))
		llmService = nil
	} else {
		defer llmService.Close()
	}

	var generator service.MessageGenerator
	if llmService != nil {
		generator = llmService
	}
	analysisService := service.NewAnalysisService(ledgerRepo, auditRepo, generator, appLogger)
	adminService := service.NewAdminService(auditRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, appLogger)
	adminHandler := handlers.NewAdminHandler(adminService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, analysisHandler, adminHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
