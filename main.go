package main

import (
	"log"
	"net/http"
	"os"

	"food-truck-api/config"
	"food-truck-api/geocode"
	"food-truck-api/handlers"
	"food-truck-api/routes"
	"food-truck-api/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Truck Locator API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🚚 Welcome to the Food Truck Locator API",
			"home":    "/api/home",
			"health":  "/health",
			"roles":   []string{"personal", "business"},
		})
	})

	// Register all routes
	geocoder := geocode.NewClient(cfg.GeocodeBaseURL, cfg.GeocodeAPIKey)
	h := handlers.New(store.New(db), geocoder, cfg)
	routes.SetupRoutes(r, h)

	// Start server
	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
