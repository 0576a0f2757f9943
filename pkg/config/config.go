package config

import (
	"log"
	"os"
	"sync"

	"auth-api/pkg/redis"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration settings for the application
type AppConfig struct {
	// Server settings
	Port            string
	Host            string
	Environment     string
	RequestTimeout  int
	ShutdownTimeout int

	// Token settings (from jwt.go)
	JWT *JWTConfig

	// CORS and CSRF settings (from security.go)
	Security *SecurityConfig

	// Logging and Sentry settings (from logging.go)
	Logging *LoggingConfig

	// Database settings (from database.go)
	Database *DatabaseConfig

	// Redis settings (from redis.go)
	Redis *redis.Config
}

var (
	appConfig *AppConfig
	once      sync.Once
)

// LoadConfig loads all configuration from environment variables
func LoadConfig() *AppConfig {
	once.Do(func() {
		// Load environment variables from .env file if it exists
		loadEnvFile()

		appConfig = &AppConfig{
			// Server settings
			Port:            envString("PORT", "5000"),
			Host:            envString("HOST", "localhost"),
			Environment:     envString("ENVIRONMENT", "development"),
			RequestTimeout:  envInt("REQUEST_TIMEOUT", 30),
			ShutdownTimeout: envInt("SHUTDOWN_TIMEOUT", 10),

			JWT:      LoadJWTConfig(),
			Security: LoadSecurityConfig(),
			Logging:  LoadLoggingConfig(),
			Database: LoadDatabaseConfig(),
			Redis:    LoadRedisConfig(),
		}
	})

	return appConfig
}

// IsDevelopment returns true if the app is in development mode
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the app is in production mode
func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

// IsTest returns true if the app is in test mode
func (c *AppConfig) IsTest() bool {
	return c.Environment == "test"
}

// loadEnvFile tries to load environment variables from .env file
func loadEnvFile() {
	// Try to load environment from .env file (prioritize based on environment)
	envFiles := []string{
		".env." + os.Getenv("ENVIRONMENT") + ".local", // .env.development.local
		".env.local",                       // .env.local
		".env." + os.Getenv("ENVIRONMENT"), // .env.development
		".env",                             // .env
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			err = godotenv.Load(file)
			if err == nil {
				log.Printf("Loaded environment from %s", file)
				break
			}
		}
	}
}
