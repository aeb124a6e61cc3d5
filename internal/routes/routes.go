// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"credlytics/internal/handlers"
	"credlytics/internal/middleware"
	"credlytics/internal/models"
	"credlytics/internal/repositories"
	"credlytics/internal/services/auth"
	"credlytics/internal/services/benefit"
	"credlytics/internal/services/card"
	"credlytics/internal/services/catalog"
	"credlytics/internal/services/notification"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	catalogRepo := repositories.NewCatalogRepository(db)
	cardRepo := repositories.NewCardRepository(db)
	benefitRepo := repositories.NewBenefitRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	// Initialize services
	authService := auth.NewService(userRepo)
	catalogService := catalog.NewService(catalogRepo, repositories.CacheService)
	cardService := card.NewService(cardRepo, benefitRepo, catalogRepo)
	benefitService := benefit.NewService(benefitRepo, cardRepo)
	notificationService := notification.NewService(notificationRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userRepo)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cardHandler := handlers.NewCardHandler(cardService)
	benefitHandler := handlers.NewBenefitHandler(benefitService)
	statsHandler := handlers.NewStatsHandler(cardService, benefitService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/login", authHandler.LoginUser)
	api.Post("/register", userHandler.RegisterUser)
	api.Post("/refresh", authHandler.RefreshToken)

	app.Get("/health", handlers.HealthCheck)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Credlytics API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	// Create middleware instance
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Protected routes with auth middleware
	protected := api.Use(authMiddleware.Handler)

	// Catalog
	protected.Get("/catalog/templates", middleware.HasPermission(models.PermissionCatalogRead), catalogHandler.GetTemplates)

	// Cards
	cards := protected.Group("/cards")
	cards.Get("/", middleware.HasPermission(models.PermissionCardsRead), cardHandler.GetCards)
	cards.Post("/", middleware.HasPermission(models.PermissionCardsWrite), cardHandler.AddCard)
	cards.Delete("/:id", middleware.HasPermission(models.PermissionCardsWrite), cardHandler.DeleteCard)

	// Benefits
	benefits := protected.Group("/benefits")
	benefits.Get("/", middleware.HasPermission(models.PermissionBenefitsRead), benefitHandler.GetBenefits)
	benefits.Post("/:id/toggle", middleware.HasPermission(models.PermissionBenefitsWrite), benefitHandler.ToggleUsed)
	benefits.Delete("/:id", middleware.HasPermission(models.PermissionBenefitsWrite), benefitHandler.DeleteBenefit)

	// Stats and notifications
	protected.Get("/stats", middleware.HasPermission(models.PermissionBenefitsRead), statsHandler.GetStats)
	protected.Get("/notifications", middleware.HasPermission(models.PermissionNotificationsRead), notificationHandler.GetNotifications)

	// Account
	protected.Post("/change-password", authHandler.ChangePassword)
	protected.Post("/logout", authHandler.LogoutUser)
}
