package authentication

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// redisKeyForToken generates a Redis key for a refresh token.
// The token itself is hashed so full credentials never sit in the cache.
func (s *Service) redisKeyForToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return s.redisClient.Key("authentications", hex.EncodeToString(sum[:]))
}

// cacheToken marks a refresh token as present in Redis
func (s *Service) cacheToken(ctx context.Context, token string) {
	if err := s.redisClient.Set(ctx, s.redisKeyForToken(token), "1", s.cacheTTL); err != nil {
		s.logger.WithError(err).Warn("Failed to cache refresh token")
	}
}

// isTokenCached reports a cache hit. Redis failures count as a miss.
func (s *Service) isTokenCached(ctx context.Context, token string) bool {
	exists, err := s.redisClient.Exists(ctx, s.redisKeyForToken(token))
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read refresh token cache")
		return false
	}
	return exists
}

// invalidateToken removes a refresh token from Redis
func (s *Service) invalidateToken(ctx context.Context, token string) {
	if _, err := s.redisClient.Delete(ctx, s.redisKeyForToken(token)); err != nil {
		s.logger.WithError(err).Warn("Failed to remove refresh token from cache")
	}
}
