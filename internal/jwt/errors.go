package jwt

import "auth-api/pkg/apperror"

var (
	// ErrInvalidToken indicates a refresh token failed signature, expiry or type checks
	ErrInvalidToken = apperror.NewInvalidToken("Refresh token is invalid")

	// ErrInvalidAccessToken indicates an access token failed signature, expiry or type checks
	ErrInvalidAccessToken = apperror.NewUnauthorized("Access token is invalid or expired")
)
