package users

import "auth-api/internal/models"

// Response messages
const (
	MessageUserAdded     = "User added successfully"
	MessageUserRetrieved = "User retrieved successfully"
)

// RegisterResponseData is returned after a successful registration
type RegisterResponseData struct {
	UserID string `json:"userId"`
}

// UserResponseData wraps the current user
type UserResponseData struct {
	User User `json:"user"`
}

// NewUser converts a stored user into its response form
func NewUser(u *models.User) User {
	return User{
		ID:        u.ID,
		Username:  u.Username,
		Fullname:  u.Fullname,
		CreatedAt: u.CreatedAt,
	}
}
