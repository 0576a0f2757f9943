package authentications

import (
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers login, refresh and logout. None require an access token.
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	group := r.Group(route)

	group.POST("", h.PostAuthentication)
	group.PUT("", h.PutAuthentication)
	group.DELETE("", h.DeleteAuthentication)
}
