package csrf

import (
	"errors"
	"net/http"
	"time"

	"auth-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// TokenLifetime is how long a client should reuse a CSRF token
const TokenLifetime = time.Hour

// Handler handles HTTP requests for CSRF tokens
type Handler struct {
	logger response.ErrorLogger
}

// TokenResponseData is the body of a CSRF token response
type TokenResponseData struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// NewHandler creates a new CSRF handler
func NewHandler(log response.ErrorLogger) *Handler {
	return &Handler{
		logger: log,
	}
}

// HandleCSRFToken generates and returns a CSRF token
func (h *Handler) HandleCSRFToken(c *gin.Context) {
	token := csrf.Token(c.Request)
	if token == "" {
		response.Error(c, h.logger, errors.New("csrf middleware returned empty token"), "/csrf")
		return
	}

	response.Success(c, http.StatusOK, "", TokenResponseData{
		Token:     token,
		ExpiresAt: time.Now().Add(TokenLifetime).Unix(),
	})
}
