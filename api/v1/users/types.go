package users

import (
	"context"

	"auth-api/internal/models"
	"auth-api/pkg/response"
)

// UserService is the part of the user service the handler needs
type UserService interface {
	CreateUser(ctx context.Context, username, password, fullname string) (*models.User, error)
	GetUserById(ctx context.Context, userID string) (*models.User, error)
}

// Handler handles user requests
type Handler struct {
	userService UserService
	logger      response.ErrorLogger
}

// User represents the user data structure for API responses
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Fullname  string `json:"fullname"`
	CreatedAt int64  `json:"createdAt"`
}
