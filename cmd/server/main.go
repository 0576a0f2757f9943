package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auth-api/internal/logger"
	"auth-api/internal/models"
	"auth-api/pkg/config"
	"auth-api/pkg/db"
	"auth-api/pkg/redis"
	"auth-api/router"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	setupGracefulShutdown(cancel)

	// Load configuration
	log.Println("Loading configuration...")
	appConfig := config.LoadConfig()

	appLogger, flush, err := logger.Setup(appConfig.Logging, appConfig.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer flush()

	// Initialize database
	log.Println("Initializing database connection...")
	database, err := db.Connect(appConfig.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Run migrations if enabled
	if appConfig.Database.MigrateOnBoot {
		log.Println("Running database migrations...")
		if err := runMigrations(database, appConfig, appLogger.Logrus()); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
	}

	// Initialize Redis connection
	log.Println("Initializing Redis connection...")
	redisClient, err := redis.Connect(ctx, appConfig.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis successfully")
	redisClient.SetLogger(appLogger.Logrus())

	go redisClient.Monitor(ctx, 30*time.Second, func(err error) {
		appLogger.WithError(err).Warn("Redis health check failed")
	})

	services, err := router.InitServices(appConfig, database, redisClient, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Setup the Gin router
	log.Println("Setting up router...")
	ginEngine, err := router.SetupRouter(appConfig, services)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	// Create server with Gin handler
	srv := &http.Server{
		Addr:              appConfig.Host + ":" + appConfig.Port,
		Handler:           ginEngine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Duration(appConfig.RequestTimeout) * time.Second,
		WriteTimeout:      time.Duration(appConfig.RequestTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server started on %s:%s", appConfig.Host, appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()
	log.Println("Shutting down server...")

	// Create shutdown context with timeout
	shutdownTimeout := time.Duration(appConfig.ShutdownTimeout) * time.Second
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	// Shutdown the server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	// Perform other cleanup
	gracefulShutdown(database, redisClient)
}

// runMigrations auto-migrates models in development and applies the SQL migrations elsewhere
func runMigrations(database *gorm.DB, appConfig *config.AppConfig, migrationLog logrus.FieldLogger) error {
	if appConfig.IsDevelopment() {
		return db.AutoMigrate(database, migrationLog, &models.User{}, &models.Authentication{})
	}
	return db.Migrate(database, db.MigrateOptions{}, migrationLog)
}

// setupGracefulShutdown sets up signal handling for graceful shutdown
func setupGracefulShutdown(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Println("Received shutdown signal")
		cancel()
	}()
}

// gracefulShutdown closes the database and Redis connections
func gracefulShutdown(database *gorm.DB, redisClient *redis.Client) {
	// Close database connections
	log.Println("Closing database connections...")
	if err := db.Close(database); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}

	// Close Redis connections
	log.Println("Closing Redis connections...")
	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis connection: %v", err)
	}

	log.Println("Shutdown complete")
}
