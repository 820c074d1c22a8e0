package main

import (
	"log"
	"os"
	"strings"

	"gymdesk_backend/internal/database"
	"gymdesk_backend/internal/repositories"
	"gymdesk_backend/internal/router"
	"gymdesk_backend/internal/services"
	"gymdesk_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using process environment: %v", err)
	}

	utils.InitLogger()
	utils.InitJWTSecret()

	// Resolve the persistence gateway once. Missing configuration or a
	// failed connection means demo mode, never a crash.
	database.Init()
	dbConn := database.Get()

	engine := gin.Default()
	engine.Use(utils.GinLogger())

	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong", "demo_mode": !database.Configured()})
	})

	router.Setup(engine, dbConn)

	// Hourly sweep: Active members whose package has lapsed go Dormant.
	expiryService := services.NewExpiryService(repositories.NewMemberRepository(dbConn), dbConn)
	c := cron.New()
	if _, err := c.AddFunc("@hourly", expiryService.Run); err != nil {
		log.Fatalf("Failed to schedule membership expiry sweep: %v", err)
	}
	c.Start()

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{
		"port":      port,
		"demo_mode": !database.Configured(),
	})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
