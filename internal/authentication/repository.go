package authentication

import (
	"context"

	"auth-api/internal/models"
	"auth-api/pkg/db"

	"gorm.io/gorm"
)

// NewRepository creates a new refresh token repository
func NewRepository(database *gorm.DB) Repository {
	return &repo{
		tokenRepo: db.NewRepositoryWithDB[models.Authentication](database),
	}
}

// SaveToken inserts a refresh token
func (r *repo) SaveToken(ctx context.Context, token string) error {
	return r.tokenRepo.Create(ctx, &models.Authentication{Token: token})
}

// TokenExists reports whether the refresh token is stored
func (r *repo) TokenExists(ctx context.Context, token string) (bool, error) {
	return r.tokenRepo.ExistsWhere(ctx, "token = ?", token)
}

// DeleteToken removes a refresh token and returns the number of deleted rows
func (r *repo) DeleteToken(ctx context.Context, token string) (int64, error) {
	return r.tokenRepo.DeleteWhere(ctx, "token = ?", token)
}
