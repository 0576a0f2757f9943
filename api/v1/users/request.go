package users

import (
	"errors"
	"fmt"
	"strings"

	"auth-api/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RegisterRequest represents a request to register a new user
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Fullname string `json:"fullname" binding:"required"`
}

// bindRequest decodes and validates the JSON body, turning failures into a 400
func bindRequest(c *gin.Context, req any) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := fieldErrs[0].Field()
		field = strings.ToLower(field[:1]) + field[1:]
		return apperror.NewValidation(fmt.Sprintf("%s is required", field))
	}

	return apperror.NewValidation("Request payload is malformed")
}
