package config

import "time"

// JWTConfig holds the token manager settings
type JWTConfig struct {
	PrivateKeyPath string        // PEM encoded Ed25519 private key
	PublicKeyPath  string        // PEM encoded Ed25519 public key
	Issuer         string        // iss claim
	AccessExpiry   time.Duration // lifetime of access tokens
	RefreshExpiry  time.Duration // lifetime of refresh tokens
}

// LoadJWTConfig loads token configuration from environment variables
func LoadJWTConfig() *JWTConfig {
	return &JWTConfig{
		PrivateKeyPath: envString("JWT_PRIVATE_KEY_PATH", "./keys/private.pem"),
		PublicKeyPath:  envString("JWT_PUBLIC_KEY_PATH", "./keys/public.pem"),
		Issuer:         envString("JWT_ISSUER", "auth-api"),
		AccessExpiry:   envDuration("ACCESS_TOKEN_AGE", time.Hour),
		RefreshExpiry:  envDuration("REFRESH_TOKEN_AGE", 30*24*time.Hour),
	}
}
