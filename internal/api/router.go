package api

import (
	"finpulse/internal/api/handlers"
	"finpulse/pkg/auth"
	"finpulse/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	analysisHandler *handlers.AnalysisHandler,
	adminHandler *handlers.AdminHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000,http://127.0.0.1:3000",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "FinPulse engine is live!"})
	})

	// Auth routes (public)
	authGroup := app.Group("/auth")
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	protected.Get("/auth/me", authHandler.Me)

	protected.Post("/analyze/:user_id", analysisHandler.AnalyzeUser)
	protected.Get("/analyze/:user_id/history", analysisHandler.History)

	admin := protected.Group("/admin")
	admin.Get("/all-users", adminHandler.AllUsers)
	admin.Get("/distinct-users", adminHandler.DistinctUsers)
	admin.Get("/confidence-analytics", adminHandler.ConfidenceAnalytics)
	admin.Get("/product-stats", adminHandler.ProductStats)
	admin.Get("/guardrail-blocks", adminHandler.GuardrailBlocks)
	admin.Get("/audit-log", middleware.RequireRole("admin", appLogger), adminHandler.AuditTrail)

	return app
}
