// internal/jwt/types.go
package jwt

import (
	"crypto/ed25519"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Identity is the payload embedded in every token
type Identity struct {
	ID string
}

// Claims represents the JWT claims issued by this service
type Claims struct {
	UserID         string `json:"id"`
	IsRefreshToken *bool  `json:"refresh,omitempty"`
	jwt.RegisteredClaims
}

// Identity returns the identity carried by the claims
func (c *Claims) Identity() Identity {
	return Identity{ID: c.UserID}
}

// isRefresh reports whether the claims were minted as a refresh token
func (c *Claims) isRefresh() bool {
	return c.IsRefreshToken != nil && *c.IsRefreshToken
}

// JWTService provides JWT token generation and validation
type JWTService struct {
	privateKey    ed25519.PrivateKey
	publicKey     ed25519.PublicKey
	issuer        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	now           func() time.Time
}

// Global key cache with lock to ensure thread safety
var (
	keyCache     = make(map[string]any)
	keyCacheLock sync.RWMutex
)
