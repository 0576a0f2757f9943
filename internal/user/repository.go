package user

import (
	"context"

	"auth-api/internal/models"
	"auth-api/pkg/db"

	"gorm.io/gorm"
)

// NewRepository creates a new user repository
func NewRepository(database *gorm.DB) Repository {
	return &repo{
		userRepo: db.NewRepositoryWithDB[models.User](database),
	}
}

// SaveUser inserts a new user
func (r *repo) SaveUser(ctx context.Context, user *models.User) error {
	return r.userRepo.Create(ctx, user)
}

// FindUserByID finds a user by ID
func (r *repo) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.userRepo.FindByID(ctx, id)
}

// FindUserByUsername finds a user by username
func (r *repo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.userRepo.FindOneWhere(ctx, "username = ?", username)
}

// UsernameExists reports whether the username is taken
func (r *repo) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.userRepo.ExistsWhere(ctx, "username = ?", username)
}
