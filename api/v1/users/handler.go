package users

import (
	"net/http"

	"auth-api/internal/middleware"
	"auth-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// NewHandler creates a new user handler
func NewHandler(userService UserService, log response.ErrorLogger) *Handler {
	return &Handler{
		userService: userService,
		logger:      log,
	}
}

// PostUser registers a new user
func (h *Handler) PostUser(c *gin.Context) {
	var req RegisterRequest
	if err := bindRequest(c, &req); err != nil {
		response.Error(c, h.logger, err, "/users")
		return
	}

	created, err := h.userService.CreateUser(c.Request.Context(), req.Username, req.Password, req.Fullname)
	if err != nil {
		response.Error(c, h.logger, err, "/users")
		return
	}

	response.Success(c, http.StatusCreated, MessageUserAdded, RegisterResponseData{UserID: created.ID})
}

// GetMe returns the user that owns the access token
func (h *Handler) GetMe(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, h.logger, middleware.ErrAuthenticationRequired, "/users/me")
		return
	}

	found, err := h.userService.GetUserById(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, h.logger, err, "/users/me")
		return
	}

	response.Success(c, http.StatusOK, MessageUserRetrieved, UserResponseData{User: NewUser(found)})
}
