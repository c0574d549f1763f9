// File: /config/config.go
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Origins allowed to make credentialed cross-site requests
	AllowedOrigins []string

	// Reference data files
	LocationsCSV  string
	CategoriesCSV string

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

func Load() *Config {
	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/eventure?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),

		AllowedOrigins: splitAndTrim(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		LocationsCSV:  getEnv("LOCATIONS_CSV", "data/locations.csv"),
		CategoriesCSV: getEnv("CATEGORIES_CSV", "data/categories.csv"),

		// Email settings (leave SMTP_HOST empty to disable outgoing mail)
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@eventure.com"),
		FromName:     getEnv("FROM_NAME", "Eventure"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
