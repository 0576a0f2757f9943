package user

import (
	"regexp"
	"strings"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// NewUserValidator creates a new user validator
func NewUserValidator() UserValidator {
	return &userValidator{}
}

// ValidateCreate validates user registration parameters
func (v *userValidator) ValidateCreate(username, password, fullname string) error {
	if !v.ValidateUsername(username) {
		return ErrInvalidUsername
	}

	if len(password) < 6 {
		return ErrInvalidPassword
	}

	if strings.TrimSpace(fullname) == "" {
		return ErrInvalidFullname
	}

	return nil
}

// ValidateUsername validates a username
func (v *userValidator) ValidateUsername(username string) bool {
	// Username must be at least 3 characters and at most 50 characters
	if len(username) < 3 || len(username) > 50 {
		return false
	}

	return usernamePattern.MatchString(username)
}
