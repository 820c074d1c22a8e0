package router

import (
	"gymdesk_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the public authentication routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/login", authHandler.Login)
	}
}

// SetupMemberRoutes sets up the member CRUD and lifecycle routes.
func SetupMemberRoutes(authenticatedGroup *gin.RouterGroup, memberHandler *handlers.MemberHandler) {
	memberRoutes := authenticatedGroup.Group("/members")
	{
		memberRoutes.GET("", memberHandler.ListMembers)
		memberRoutes.POST("", memberHandler.CreateMember)
		memberRoutes.DELETE("/:id", memberHandler.DeleteMember)
		memberRoutes.POST("/:id/cancel-membership", memberHandler.CancelMembership)
		memberRoutes.POST("/:id/reactivate", memberHandler.ReactivateMembership)
		memberRoutes.PATCH("/:id/rating", memberHandler.UpdateRating)
	}
}

// SetupPaymentRoutes sets up the payment ledger routes.
func SetupPaymentRoutes(authenticatedGroup *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	paymentRoutes := authenticatedGroup.Group("/payments")
	{
		paymentRoutes.GET("", paymentHandler.ListPayments)
		paymentRoutes.POST("/manual", paymentHandler.LogManualPayment)
	}
}

// SetupCatalogRoutes sets up the package and trainer list routes.
func SetupCatalogRoutes(authenticatedGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	authenticatedGroup.GET("/packages", catalogHandler.ListPackages)
	authenticatedGroup.GET("/trainers", catalogHandler.ListTrainers)
}

// SetupNotificationRoutes sets up the notification dispatch route.
func SetupNotificationRoutes(authenticatedGroup *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	authenticatedGroup.POST("/notifications/send", notificationHandler.Send)
}
