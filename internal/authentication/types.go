package authentication

import (
	"context"
	"time"

	"auth-api/internal/logger"
	"auth-api/internal/models"
	"auth-api/pkg/db"
	"auth-api/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// Service keeps track of the refresh tokens that may still mint access tokens
type Service struct {
	repo        Repository
	redisClient redis.RedisClient
	logger      *logger.Logger
	cacheTTL    time.Duration
}

// Repository defines the refresh token repository interface
type Repository interface {
	SaveToken(ctx context.Context, token string) error
	TokenExists(ctx context.Context, token string) (bool, error)
	DeleteToken(ctx context.Context, token string) (int64, error)
}

// repo is the concrete implementation of Repository
type repo struct {
	tokenRepo db.Repository[models.Authentication]
}

// IssuePayload is the body of a login request
type IssuePayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshPayload is the body of an access token refresh request
type RefreshPayload struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RevokePayload is the body of a logout request
type RevokePayload struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// PayloadValidator checks request payloads before any work is done
type PayloadValidator struct {
	validate *validator.Validate
}
