package config

import "time"

// SecurityConfig holds CORS and CSRF settings
type SecurityConfig struct {
	AllowedOrigins []string
	CORSMaxAge     time.Duration
	TrustedProxies []string

	CSRFEnabled bool
	CSRFSecret  string
	CSRFSecure  bool
	CSRFDomain  string
}

// LoadSecurityConfig loads CORS and CSRF configuration from environment variables
func LoadSecurityConfig() *SecurityConfig {
	return &SecurityConfig{
		AllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		CORSMaxAge:     envDuration("CORS_MAX_AGE", 24*time.Hour),
		TrustedProxies: envList("TRUSTED_PROXIES", nil),

		CSRFEnabled: envBool("CSRF_ENABLED", false),
		CSRFSecret:  envString("CSRF_SECRET", ""),
		CSRFSecure:  envBool("CSRF_SECURE", false),
		CSRFDomain:  envString("CSRF_DOMAIN", "localhost"),
	}
}
