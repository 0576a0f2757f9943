package authentication

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"auth-api/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// NewPayloadValidator creates a validator that reports fields by their JSON names
func NewPayloadValidator() *PayloadValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &PayloadValidator{validate: v}
}

// ValidateIssuePayload checks a login payload
func (v *PayloadValidator) ValidateIssuePayload(payload IssuePayload) error {
	return v.check(payload)
}

// ValidateRefreshPayload checks a refresh payload
func (v *PayloadValidator) ValidateRefreshPayload(payload RefreshPayload) error {
	return v.check(payload)
}

// ValidateRevokePayload checks a logout payload
func (v *PayloadValidator) ValidateRevokePayload(payload RevokePayload) error {
	return v.check(payload)
}

// check runs struct validation and reports the first failing field
func (v *PayloadValidator) check(payload any) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate payload: %w", err)
	}

	fe := fieldErrs[0]
	if fe.Tag() == "required" {
		return apperror.NewValidation(fmt.Sprintf("%s is required", fe.Field()))
	}
	return apperror.NewValidation(fmt.Sprintf("%s is invalid", fe.Field()))
}
