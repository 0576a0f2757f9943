package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"auth-api/internal/logger"
	"auth-api/internal/models"
	"auth-api/pkg/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// NewService creates a new user service
func NewService(repo Repository, redisClient redis.RedisClient, log *logger.Logger) *Service {
	return &Service{
		repo:        repo,
		redisClient: redisClient,
		logger:      log,
		validator:   NewUserValidator(),
		cacheTTL:    time.Hour,
		hashCost:    bcrypt.DefaultCost,
	}
}

// VerifyUserCredential checks a username/password pair and returns the user id.
// Credentials are always read from the database, never from the cache.
func (s *Service) VerifyUserCredential(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("compare password hash: %w", err)
	}

	return user.ID, nil
}

// CreateUser registers a new user with a bcrypt-hashed password
func (s *Service) CreateUser(ctx context.Context, username, password, fullname string) (*models.User, error) {
	username = strings.TrimSpace(username)
	fullname = strings.TrimSpace(fullname)

	if err := s.validator.ValidateCreate(username, password, fullname); err != nil {
		return nil, err
	}

	exists, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	if exists {
		return nil, ErrUsernameAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
		Fullname: fullname,
	}

	if err := s.repo.SaveUser(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same username
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameAlreadyExists
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	s.cacheUser(ctx, user)

	return user, nil
}

// GetUserById retrieves a user by ID with cache lookup
func (s *Service) GetUserById(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, ErrUserNotFound
	}

	if user, err := s.getUserFromCache(ctx, userID); err == nil {
		return user, nil
	}

	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	s.cacheUser(ctx, user)

	return user, nil
}
