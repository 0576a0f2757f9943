package health

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the health probe
func RegisterRoutes(r gin.IRoutes, h *Handler) {
	r.GET("/health", h.HandleHealth)
}
