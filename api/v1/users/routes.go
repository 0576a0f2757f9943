package users

import (
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers user sign up
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/users", h.PostUser)
}

// RegisterProtectedRoutes registers routes that need an access token
func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/users/me", h.GetMe)
}
