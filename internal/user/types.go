package user

import (
	"context"
	"time"

	"auth-api/internal/logger"
	"auth-api/internal/models"
	"auth-api/pkg/db"
	"auth-api/pkg/redis"
)

// Service verifies credentials and manages user accounts
type Service struct {
	repo        Repository
	redisClient redis.RedisClient
	logger      *logger.Logger
	validator   UserValidator
	cacheTTL    time.Duration
	hashCost    int
}

// Repository defines the user repository interface
type Repository interface {
	SaveUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// repo is the concrete implementation of Repository
type repo struct {
	userRepo db.Repository[models.User]
}

// UserValidator is the interface for registration input validation
type UserValidator interface {
	ValidateCreate(username, password, fullname string) error
	ValidateUsername(username string) bool
}

// userValidator is the concrete implementation of UserValidator
type userValidator struct{}
