package authentication

import (
	"errors"

	"auth-api/pkg/apperror"
)

var (
	// ErrRefreshTokenNotFound indicates the refresh token is not held by the store
	ErrRefreshTokenNotFound = apperror.NewNotFound("Refresh token not found")

	// ErrInvalidPayload is returned when a request body cannot be decoded
	ErrInvalidPayload = apperror.NewValidation("Request payload is malformed")

	// ErrDatabaseError indicates an error occurred with the database
	ErrDatabaseError = errors.New("authentication database operation failed")
)
