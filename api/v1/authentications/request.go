package authentications

import (
	"auth-api/internal/authentication"

	"github.com/gin-gonic/gin"
)

// bindPayload decodes the JSON body into payload.
// Any decoding failure, wrong JSON types included, is a validation error.
func bindPayload(c *gin.Context, payload any) error {
	if err := c.ShouldBindJSON(payload); err != nil {
		return authentication.ErrInvalidPayload
	}
	return nil
}
