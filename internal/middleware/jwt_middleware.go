package middleware

import (
	"strings"

	"auth-api/internal/jwt"
	"auth-api/pkg/apperror"
	"auth-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys set by the JWT middleware
const (
	ContextUserID = "userID"
	ContextClaims = "claims"
)

// ErrAuthenticationRequired is returned when no access token was sent
var ErrAuthenticationRequired = apperror.NewUnauthorized("Authentication required")

// AccessTokenValidator validates bearer access tokens
type AccessTokenValidator interface {
	ValidateAccessToken(tokenString string) (*jwt.Claims, error)
}

// JWTAuthMiddleware rejects requests without a valid access token.
// Refresh tokens are never accepted here.
func JWTAuthMiddleware(tokens AccessTokenValidator, log response.ErrorLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractTokenFromSources(c, "Authorization", "accessToken")
		if tokenString == "" {
			response.AbortWithError(c, log, ErrAuthenticationRequired, c.FullPath())
			return
		}

		claims, err := tokens.ValidateAccessToken(tokenString)
		if err != nil {
			response.AbortWithError(c, log, err, c.FullPath())
			return
		}

		setClaimsInContext(c, claims)
		c.Next()
	}
}

// UserIDFromContext returns the user id set by JWTAuthMiddleware
func UserIDFromContext(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserID)
	return userID, userID != ""
}

// Helper function to extract token from multiple sources (header or cookie)
func extractTokenFromSources(c *gin.Context, headerName, cookieName string) string {
	header := c.GetHeader(headerName)
	if headerName == "Authorization" && header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	} else if header != "" {
		return header
	}

	cookie, err := c.Cookie(cookieName)
	if err == nil && cookie != "" {
		return cookie
	}

	return ""
}

func setClaimsInContext(c *gin.Context, claims *jwt.Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextClaims, claims.RegisteredClaims)
}
