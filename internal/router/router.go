package router

import (
	"database/sql"

	"gymdesk_backend/internal/handlers"
	"gymdesk_backend/internal/middleware"
	"gymdesk_backend/internal/repositories"
	"gymdesk_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application. db may be nil
// when the backend is unconfigured; the fallback policy keeps every
// endpoint functional anyway.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	memberRepo := repositories.NewMemberRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	authRepo := repositories.NewAuthRepository(db)

	// Initialize Services
	memberService := services.NewMemberService(memberRepo, db)
	paymentService := services.NewPaymentService(paymentRepo, memberRepo, db)
	catalogService := services.NewCatalogService(catalogRepo)
	notificationService := services.NewNotificationService(memberRepo)
	authService := services.NewAuthService(authRepo, db)

	// Initialize Handlers
	memberHandler := handlers.NewMemberHandler(memberService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	authHandler := handlers.NewAuthHandler(authService)

	api := engine.Group("/api")
	api.Use(middleware.ConfigMiddleware())

	// Public authentication routes
	SetupAuthRoutes(api, authHandler)

	// Everything else requires a resolved tenant
	authenticated := api.Group("")
	authenticated.Use(middleware.TenantMiddleware())
	{
		SetupMemberRoutes(authenticated, memberHandler)
		SetupPaymentRoutes(authenticated, paymentHandler)
		SetupCatalogRoutes(authenticated, catalogHandler)
		SetupNotificationRoutes(authenticated, notificationHandler)
	}
}
