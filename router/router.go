package router

import (
	"context"
	"errors"
	"net/http"

	authenticationsAPI "auth-api/api/v1/authentications"
	csrfAPI "auth-api/api/v1/csrf"
	healthAPI "auth-api/api/v1/health"
	usersAPI "auth-api/api/v1/users"
	"auth-api/internal/authentication"
	"auth-api/internal/jwt"
	log "auth-api/internal/logger"
	"auth-api/internal/middleware"
	internalUser "auth-api/internal/user"
	"auth-api/pkg/config"
	"auth-api/pkg/db"
	"auth-api/pkg/redis"
	"auth-api/pkg/status"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Services holds everything the HTTP layer is wired to
type Services struct {
	Logger          *log.Logger
	JWT             *jwt.JWTService
	Users           *internalUser.Service
	Authentications *authentication.Service
	Validator       *authentication.PayloadValidator
	DatabaseHealth  healthAPI.Checker
	RedisHealth     healthAPI.Checker
}

// InitServices initializes all required services
func InitServices(cfg *config.AppConfig, database *gorm.DB, redisClient redis.RedisClient, logger *log.Logger) (*Services, error) {
	jwtService, err := jwt.NewJWTService(cfg.JWT)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize JWT service")
		return nil, err
	}

	userRepo := internalUser.NewRepository(database)
	userService := internalUser.NewService(userRepo, redisClient, logger)

	authRepo := authentication.NewRepository(database)
	authService := authentication.NewService(authRepo, redisClient, logger, cfg.JWT.RefreshExpiry)

	logger.Info("All services initialized successfully")

	return &Services{
		Logger:          logger,
		JWT:             jwtService,
		Users:           userService,
		Authentications: authService,
		Validator:       authentication.NewPayloadValidator(),
		DatabaseHealth: func(ctx context.Context) error {
			return db.Health(ctx, database)
		},
		RedisHealth: redisClient.Ping,
	}, nil
}

// CSRFMiddleware creates a middleware for CSRF protection
func CSRFMiddleware(cfg *config.SecurityConfig, logger *log.Logger) gin.HandlerFunc {
	csrfMiddleware := csrf.Protect(
		[]byte(cfg.CSRFSecret),
		csrf.Secure(cfg.CSRFSecure),
		csrf.HttpOnly(true),
		csrf.Path("/"),
		csrf.CookieName("csrfToken"),
		csrf.MaxAge(int(csrfAPI.TokenLifetime.Seconds())),
		csrf.SameSite(csrf.SameSiteStrictMode),
		csrf.Domain(cfg.CSRFDomain),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, _ := gin.CreateTestContext(w)
			c.Request = r

			// Log CSRF error for monitoring
			logger.WithFields(logrus.Fields{
				"remoteIP":  c.ClientIP(),
				"path":      r.URL.Path,
				"method":    r.Method,
				"userAgent": r.UserAgent(),
				"reason":    csrf.FailureReason(r),
			}).Warn("CSRF token mismatch")

			c.JSON(http.StatusForbidden, gin.H{"status": status.Fail, "message": "CSRF token mismatch"})
			c.Abort()
		})),
	)

	return func(c *gin.Context) {
		csrfMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})).ServeHTTP(c.Writer, c.Request)
		c.Abort()
	}
}

// SetupEngine creates a new Gin engine with default middleware
func SetupEngine(cfg *config.AppConfig) *gin.Engine {
	switch {
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case cfg.IsTest():
		gin.SetMode(gin.TestMode)
	}
	return gin.Default()
}

// SetupCORS configures CORS settings
func SetupCORS(r *gin.Engine, cfg *config.SecurityConfig) error {
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return err
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = cfg.CORSMaxAge

	r.Use(cors.New(corsConfig))
	return nil
}

// SetupCSRFProtection configures CSRF protection when it is enabled
func SetupCSRFProtection(r *gin.Engine, cfg *config.SecurityConfig, logger *log.Logger) error {
	if !cfg.CSRFEnabled {
		return nil
	}
	if len(cfg.CSRFSecret) < 32 {
		return errors.New("CSRF_SECRET must be at least 32 bytes when CSRF_ENABLED is true")
	}

	r.Use(CSRFMiddleware(cfg, logger))
	return nil
}

// SetupRoutes registers every API route on r
func SetupRoutes(r *gin.Engine, services *Services, csrfEnabled bool) {
	healthAPI.RegisterRoutes(r, healthAPI.NewHandler(services.DatabaseHealth, services.RedisHealth))

	v1 := r.Group("/api/v1")

	if csrfEnabled {
		csrfAPI.RegisterPublicRoutes(v1, csrfAPI.NewHandler(services.Logger))
	}

	authenticationsHandler := authenticationsAPI.NewHandler(
		services.Validator,
		services.Users,
		services.JWT,
		services.Authentications,
		services.Logger,
	)
	authenticationsAPI.RegisterPublicRoutes(v1, authenticationsHandler)

	usersHandler := usersAPI.NewHandler(services.Users, services.Logger)
	usersAPI.RegisterPublicRoutes(v1, usersHandler)

	protected := v1.Group("")
	protected.Use(middleware.JWTAuthMiddleware(services.JWT, services.Logger))
	usersAPI.RegisterProtectedRoutes(protected, usersHandler)
}

// SetupRouter creates and configures the main router with all routes
func SetupRouter(cfg *config.AppConfig, services *Services) (*gin.Engine, error) {
	r := SetupEngine(cfg)

	if err := SetupCORS(r, cfg.Security); err != nil {
		services.Logger.WithError(err).Error("Failed to setup CORS")
		return nil, err
	}

	if err := SetupCSRFProtection(r, cfg.Security, services.Logger); err != nil {
		services.Logger.WithError(err).Error("Failed to setup CSRF protection")
		return nil, err
	}

	SetupRoutes(r, services, cfg.Security.CSRFEnabled)

	services.Logger.Info("Router setup completed successfully")
	return r, nil
}
