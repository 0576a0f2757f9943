package user

import (
	"errors"

	"auth-api/pkg/apperror"
)

var (
	// ErrInvalidCredentials is returned for an unknown username and for a wrong password alike
	ErrInvalidCredentials = apperror.NewInvalidCredentials("The credentials you provided are wrong")

	// ErrUserNotFound indicates the user was not found
	ErrUserNotFound = apperror.NewNotFound("User not found")

	// ErrUsernameAlreadyExists indicates the username is already in use
	ErrUsernameAlreadyExists = apperror.NewConflict("Username already exists")

	// ErrInvalidUsername indicates the provided username is invalid
	ErrInvalidUsername = apperror.NewValidation("Username must be 3-50 characters of letters, digits or underscores")

	// ErrInvalidPassword indicates the provided password is too short
	ErrInvalidPassword = apperror.NewValidation("Password must be at least 6 characters")

	// ErrInvalidFullname indicates the full name is missing
	ErrInvalidFullname = apperror.NewValidation("Fullname is required")

	// ErrDatabaseError indicates an error occurred with the database
	ErrDatabaseError = errors.New("user database operation failed")
)
