// internal/jwt/service.go
package jwt

import (
	"errors"
	"fmt"
	"time"

	"auth-api/pkg/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// NewJWTService creates a new JWT service with Ed25519 keys
func NewJWTService(cfg *config.JWTConfig) (*JWTService, error) {
	// Load private key from cache or file
	privateKey, err := getOrLoadPrivateKey(cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}
	// Load public key from cache or file
	publicKey, err := getOrLoadPublicKey(cfg.PublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load public key: %w", err)
	}
	return &JWTService{
		privateKey:    privateKey,
		publicKey:     publicKey,
		issuer:        cfg.Issuer,
		accessExpiry:  cfg.AccessExpiry,
		refreshExpiry: cfg.RefreshExpiry,
		now:           time.Now,
	}, nil
}

// GenerateAccessToken creates a short-lived token for the identity
func (s *JWTService) GenerateAccessToken(identity Identity) (string, error) {
	token, err := s.generateToken(identity, s.accessExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, nil
}

// GenerateRefreshToken creates a long-lived token that can be exchanged for access tokens
func (s *JWTService) GenerateRefreshToken(identity Identity) (string, error) {
	isRefreshToken := true
	token, err := s.generateToken(identity, s.refreshExpiry, &isRefreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return token, nil
}

// generateToken signs a token for identity. Each token gets a random jti,
// so tokens minted within the same second never collide.
func (s *JWTService) generateToken(identity Identity, expiry time.Duration, isRefreshToken *bool) (string, error) {
	if identity.ID == "" {
		return "", errors.New("identity id is required")
	}

	now := s.now()
	claims := Claims{
		UserID:         identity.ID,
		IsRefreshToken: isRefreshToken,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   identity.ID,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signedToken, err := token.SignedString(s.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signedToken, nil
}

// ValidateToken validates a JWT token's signature, time claims and issuer and returns the claims
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodEdDSA.Alg()}}

	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}
	if claims.UserID == "" {
		return nil, errors.New("token carries no identity")
	}
	return claims, nil
}

// VerifyRefreshToken checks a refresh token and returns its claims.
// Any failure is reported as ErrInvalidToken.
func (s *JWTService) VerifyRefreshToken(tokenString string) (*Claims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !claims.isRefresh() {
		return nil, fmt.Errorf("%w: not a refresh token", ErrInvalidToken)
	}
	return claims, nil
}

// ValidateAccessToken checks an access token and returns its claims.
// Refresh tokens are rejected so they cannot be used as bearer credentials.
func (s *JWTService) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccessToken, err)
	}
	if claims.isRefresh() {
		return nil, fmt.Errorf("%w: refresh token used as access token", ErrInvalidAccessToken)
	}
	return claims, nil
}
