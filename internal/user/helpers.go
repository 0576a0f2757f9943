package user

import (
	"context"

	"auth-api/internal/models"
)

// redisKeyForUser generates a Redis key for a user
func (s *Service) redisKeyForUser(userID string) string {
	return s.redisClient.Key("users", userID)
}

// cacheUser saves a user to Redis. The password hash is never serialized.
func (s *Service) cacheUser(ctx context.Context, user *models.User) {
	if err := s.redisClient.SetJSON(ctx, s.redisKeyForUser(user.ID), user, s.cacheTTL); err != nil {
		s.logger.WithError(err).Warn("Failed to cache user")
	}
}

// getUserFromCache retrieves a user from Redis
func (s *Service) getUserFromCache(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := s.redisClient.GetJSON(ctx, s.redisKeyForUser(userID), &user); err != nil {
		return nil, err
	}
	return &user, nil
}
