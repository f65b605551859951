package main

import (
	"log"
	"net/http"
	"os"

	"bistro-api/config"
	"bistro-api/middleware"
	"bistro-api/routes"
	"bistro-api/store"
	"bistro-api/token"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	// Initialize database — a dead database at startup is fatal
	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected and migrated successfully")

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())

	// Liveness check
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bistro Boss is running")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Bistro Ordering API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, &routes.Deps{
		Tokens:  token.NewService(cfg.JWTSecret),
		Users:   store.NewUserStore(db),
		Menu:    store.NewMenuStore(db),
		Reviews: store.NewReviewStore(db),
		Carts:   store.NewCartStore(db),
	})

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
