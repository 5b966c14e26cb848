package main

import (
	"net/http"
	"os"

	"restaurant-pos-api/config"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()
	config.InitLogger()
	defer config.Logger.Sync()

	config.InitDB()
	config.SeedAdmin()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(config.Logger))

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length", "X-Request-ID"},
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant POS API",
		})
	})

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	config.Logger.Info("Server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		config.Logger.Fatal("Failed to start server", zap.Error(err))
	}
}
