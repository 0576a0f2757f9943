package db

import (
	"context"

	"gorm.io/gorm"
)

// Repository defines a generic repository interface
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id any) (*T, error)
	FindOneWhere(ctx context.Context, condition string, args ...any) (*T, error)
	ExistsWhere(ctx context.Context, condition string, args ...any) (bool, error)
	DeleteWhere(ctx context.Context, condition string, args ...any) (int64, error)

	// Get the underlying DB connection
	DB() *gorm.DB
}

// BaseRepository implements the Repository interface for a gorm model
type BaseRepository[T any] struct {
	db *gorm.DB
}

// NewRepositoryWithDB creates a repository with a specific DB connection
func NewRepositoryWithDB[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{
		db: db,
	}
}

// DB returns the underlying DB connection
func (r *BaseRepository[T]) DB() *gorm.DB {
	return r.db
}

// Create saves a new entity inside a transaction
func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return WithTransactionDB(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Create(entity).Error
	})
}

// FindByID finds an entity by ID
func (r *BaseRepository[T]) FindByID(ctx context.Context, id any) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindOneWhere finds a single entity matching the condition
func (r *BaseRepository[T]) FindOneWhere(ctx context.Context, condition string, args ...any) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where(condition, args...).First(&entity).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// ExistsWhere reports whether any entity matches the condition
func (r *BaseRepository[T]) ExistsWhere(ctx context.Context, condition string, args ...any) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Where(condition, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteWhere deletes entities matching the condition and returns how many rows went away
func (r *BaseRepository[T]) DeleteWhere(ctx context.Context, condition string, args ...any) (int64, error) {
	var entity T
	result := r.db.WithContext(ctx).Where(condition, args...).Delete(&entity)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
