// File: /routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"eventure-api/config"
	"eventure-api/controllers"
	"eventure-api/middleware"
	"eventure-api/repositories"
	"eventure-api/services"
)

// SetupCORS allows the browser client to send the session cookie
// cross-site. Credentialed CORS must never reflect arbitrary origins, so
// only origins from the configured allow-list are acknowledged.
func SetupCORS(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Services
	userRepo := repositories.NewUserRepository(db)
	authService := services.NewAuthService(db, cfg.JWTSecret, emailService)
	eventService := services.NewEventService(db, userRepo)

	// Controllers
	authController := controllers.NewAuthController(authService)
	eventController := controllers.NewEventController(eventService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	api := r.Group("/api")

	// Auth routes (public)
	api.POST("/login", middleware.RateLimit(10, 5), authController.Login)
	api.POST("/logout", authController.Logout)
	api.POST("/signup", authController.Signup)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.POST("/event", eventController.CreateEvent)
		protected.PUT("/event/:id", eventController.UpdateEvent)
		protected.GET("/event/:id", eventController.GetEvent)
		protected.GET("/events", eventController.GetEvents)
		protected.GET("/events/mine", eventController.GetCreatedEvents)
	}
}
