package authentication

import (
	"context"
	"fmt"
	"time"

	"auth-api/internal/logger"
	"auth-api/pkg/redis"
)

// NewService creates a new refresh token store.
// cacheTTL should match the refresh token lifetime.
func NewService(repo Repository, redisClient redis.RedisClient, log *logger.Logger, cacheTTL time.Duration) *Service {
	return &Service{
		repo:        repo,
		redisClient: redisClient,
		logger:      log,
		cacheTTL:    cacheTTL,
	}
}

// AddRefreshToken persists a freshly issued refresh token
func (s *Service) AddRefreshToken(ctx context.Context, token string) error {
	if err := s.repo.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	s.cacheToken(ctx, token)

	return nil
}

// VerifyRefreshToken returns ErrRefreshTokenNotFound unless the token is stored
func (s *Service) VerifyRefreshToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrRefreshTokenNotFound
	}

	if s.isTokenCached(ctx, token) {
		return nil
	}

	exists, err := s.repo.TokenExists(ctx, token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	if !exists {
		return ErrRefreshTokenNotFound
	}

	s.cacheToken(ctx, token)

	return nil
}

// DeleteRefreshToken removes a refresh token so it can no longer be used
func (s *Service) DeleteRefreshToken(ctx context.Context, token string) error {
	// Evict first so a concurrent verify falls through to the database
	s.invalidateToken(ctx, token)

	deleted, err := s.repo.DeleteToken(ctx, token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	// A verify that ran between the eviction and the delete may have cached the token again
	s.invalidateToken(ctx, token)

	if deleted == 0 {
		return ErrRefreshTokenNotFound
	}

	return nil
}
