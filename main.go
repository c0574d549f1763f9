// File: /main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"eventure-api/config"
	"eventure-api/database"
	"eventure-api/middleware"
	"eventure-api/routes"
	"eventure-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// One-time import of location/category reference data
	if err := database.ImportReferenceData(db, cfg.LocationsCSV, cfg.CategoriesCSV); err != nil {
		log.Printf("Warning: Failed to import reference data: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	// Setup CORS middleware
	router.Use(routes.SetupCORS(cfg.AllowedOrigins))

	// Request logging middleware
	router.Use(gin.Logger())

	// Recovery middleware
	router.Use(gin.Recovery())

	// Security headers
	router.Use(middleware.SecurityHeaders())

	// Email service (no-op without SMTP configuration)
	emailService := services.NewEmailService(cfg)

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService)

	// Start server
	log.Printf("Starting Eventure API server on port %s", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
