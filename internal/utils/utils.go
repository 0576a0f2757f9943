package utils

import "github.com/google/uuid"

// GeneratePrefixedID returns a random UUID v4 tagged with prefix
func GeneratePrefixedID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// GenerateUserID generates a unique user ID
func GenerateUserID() string {
	return GeneratePrefixedID("user")
}

// GenerateRequestID generates an ID used to correlate logged server errors
func GenerateRequestID() string {
	return GeneratePrefixedID("req")
}
