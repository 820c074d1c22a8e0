package middleware

import (
	"net/http"
	"strings"

	"gymdesk_backend/internal/database"
	"gymdesk_backend/internal/models"
	"gymdesk_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set once per request.
const (
	ContextGymID            = "gymID"
	ContextBackendAvailable = "backendAvailable"
)

// ConfigMiddleware snapshots backend availability into the request
// context. Applied to every route, including the public auth ones, so
// nothing downstream re-probes configuration.
func ConfigMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextBackendAvailable, database.Configured())
		c.Next()
	}
}

// TenantMiddleware resolves the request's tenant once and stores it in
// the gin context.
//
// With a configured backend, a valid Bearer token is mandatory and its
// gym_id claim is the tenant; a missing or invalid token is the one
// failure that is never masked. In demo mode every request maps to the
// fixed demo tenant and no 401 is possible.
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !BackendAvailable(c) {
			c.Set(ContextGymID, models.DemoTenantID)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil || claims.GymID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(ContextGymID, claims.GymID)
		c.Next()
	}
}

// GymID returns the tenant resolved for this request.
func GymID(c *gin.Context) string {
	return c.GetString(ContextGymID)
}

// BackendAvailable reports whether this request can reach a durable
// backend.
func BackendAvailable(c *gin.Context) bool {
	return c.GetBool(ContextBackendAvailable)
}
