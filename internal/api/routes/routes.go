package routes

import (
	"log"

	"support-portal-backend/internal/api/handlers"
	"support-portal-backend/internal/api/middleware"
	"support-portal-backend/internal/auth"
	"support-portal-backend/internal/config"
	"support-portal-backend/internal/repository"
	"support-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	workflowRepo := repository.NewWorkflowRepository(db)

	// Initialize services
	notifier := service.NewWorkflowNotifier(cfg, workflowRepo)
	ticketService := service.NewTicketService(ticketRepo, notifier, validator)
	webhookService := service.NewWebhookService(cfg, ticketRepo, workflowRepo)
	screensService, err := service.NewScreensService(cfg.ScreensRegistry)
	if err != nil {
		log.Printf("Warning: failed to load screens registry: %v", err)
		screensService, _ = service.NewScreensService("")
	}

	// Initialize auth services
	authService := auth.NewAuthService(cfg, userRepo, validator)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	webhookHandler := handlers.NewWebhookHandler(webhookService)
	screensHandler := handlers.NewScreensHandler(screensService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// Workflow engine callback. Authenticated by shared secret in the body,
	// never by JWT.
	router.POST("/webhook/ticket-done", webhookHandler.TicketDone)

	// Authenticated API routes. The middleware resolves the caller's tenant
	// id; handlers and services never read it from client input.
	api := router.Group("/api")
	api.Use(authMiddleware.RequireAuth())
	{
		api.GET("/me/screens", screensHandler.GetScreens)

		tickets := api.Group("/tickets")
		{
			tickets.POST("", ticketHandler.CreateTicket)
			tickets.GET("", ticketHandler.ListTickets)
		}

		// Admin routes carry an explicit role check per group; there is no
		// path-prefix based privilege matching.
		admin := api.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.GET("/tickets", ticketHandler.ListAdminTickets)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
