package authentications

import (
	"fmt"
	"net/http"

	"auth-api/internal/authentication"
	"auth-api/internal/jwt"
	"auth-api/pkg/response"

	"github.com/gin-gonic/gin"
)

const route = "/authentications"

// NewHandler creates a new authentications handler
func NewHandler(validator Validator, users CredentialVerifier, tokens TokenManager, store RefreshTokenStore, log response.ErrorLogger) *Handler {
	return &Handler{
		validator: validator,
		users:     users,
		tokens:    tokens,
		store:     store,
		logger:    log,
	}
}

// PostAuthentication logs a user in and issues an access/refresh token pair
func (h *Handler) PostAuthentication(c *gin.Context) {
	var payload authentication.IssuePayload
	if err := bindPayload(c, &payload); err != nil {
		response.Error(c, h.logger, err, route)
		return
	}
	if err := h.validator.ValidateIssuePayload(payload); err != nil {
		response.Error(c, h.logger, err, route)
		return
	}

	ctx := c.Request.Context()

	userID, err := h.users.VerifyUserCredential(ctx, payload.Username, payload.Password)
	if err != nil {
		response.Error(c, h.logger, err, route)
		return
	}

	identity := jwt.Identity{ID: userID}

	accessToken, err := h.tokens.GenerateAccessToken(identity)
	if err != nil {
		response.Error(c, h.logger, fmt.Errorf("generate access token: %w", err), route)
		return
	}

	refreshToken, err := h.tokens.GenerateRefreshToken(identity)
	if err != nil {
		response.Error(c, h.logger, fmt.Errorf("generate refresh token: %w", err), route)
		return
	}

	if err := h.store.AddRefreshToken(ctx, refreshToken); err != nil {
		response.Error(c, h.logger, err, route)
		return
	}

	response.Success(c, http.StatusCreated, MessageAuthenticationAdded, IssueResponseData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// PutAuthentication exchanges a stored refresh token for a new access token
func (h *Handler) PutAuthentication(c *gin.Context) {
	var payload authentication.RefreshPayload
	if err := bindPayload(c, &payload); err != nil {
		response.Error(c, h.logger, err, route)
		return
	}
	if err := h.validator.ValidateRefreshPayload(payload); err != nil {
		response.Error(c, h.logger, err, route)
		return
	}

	if err := h.store.VerifyRefreshToken(c.Request.Context(), payload.RefreshToken); err != nil {
		response.Error(c, h.logger, err, route)
		return
	}

	claims, err := h.tokens.VerifyRefreshToken(payload.RefreshToken)
	if err != nil {
		response.Error(c, h.logger, err, route)
		return
	}

	accessToken, err := h.tokens.GenerateAccessToken(claims.Identity())
	if err != nil {
		response.Error(c, h.logger, fmt.Errorf("generate access token: %w", err), route)
		return
	}

	response.Success(c, http.StatusOK, MessageAccessTokenRefreshed, RefreshResponseData{
		AccessToken: accessToken,
	})
}

// DeleteAuthentication revokes a refresh token
func (h *Handler) DeleteAuthentication(c *gin.Context) {
	var payload authentication.RevokePayload
	if err := bindPayload(c, &payload); err != nil {
		response.Error(c, h.logger, err, route)
		return
	}
	if err := h.validator.ValidateRevokePayload(payload); err != nil {
		response.Error(c, h.logger, err, route)
		return
	}

	ctx := c.Request.Context()

	if err := h.store.VerifyRefreshToken(ctx, payload.RefreshToken); err != nil {
		response.Error(c, h.logger, err, route)
		return
	}

	if err := h.store.DeleteRefreshToken(ctx, payload.RefreshToken); err != nil {
		response.Error(c, h.logger, err, route)
		return
	}

	response.Success(c, http.StatusOK, MessageRefreshTokenDeleted, nil)
}
