package authentications

import (
	"context"

	"auth-api/internal/authentication"
	"auth-api/internal/jwt"
	"auth-api/pkg/response"
)

// Validator checks request payloads
type Validator interface {
	ValidateIssuePayload(payload authentication.IssuePayload) error
	ValidateRefreshPayload(payload authentication.RefreshPayload) error
	ValidateRevokePayload(payload authentication.RevokePayload) error
}

// CredentialVerifier resolves a username/password pair to a user id
type CredentialVerifier interface {
	VerifyUserCredential(ctx context.Context, username, password string) (string, error)
}

// TokenManager mints and checks signed tokens
type TokenManager interface {
	GenerateAccessToken(identity jwt.Identity) (string, error)
	GenerateRefreshToken(identity jwt.Identity) (string, error)
	VerifyRefreshToken(tokenString string) (*jwt.Claims, error)
}

// RefreshTokenStore holds the refresh tokens that are still valid
type RefreshTokenStore interface {
	AddRefreshToken(ctx context.Context, token string) error
	VerifyRefreshToken(ctx context.Context, token string) error
	DeleteRefreshToken(ctx context.Context, token string) error
}

// Handler manages login, token refresh and logout requests
type Handler struct {
	validator Validator
	users     CredentialVerifier
	tokens    TokenManager
	store     RefreshTokenStore
	logger    response.ErrorLogger
}
