package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a client error
type Kind string

const (
	KindValidation         Kind = "validation"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindInvalidToken       Kind = "invalid_token"
	KindNotFound           Kind = "not_found"
	KindConflict           Kind = "conflict"
	KindUnauthorized       Kind = "unauthorized"
)

// ClientError is an error caused by the caller's input or state.
// It carries the HTTP status code and the message exposed to the client.
type ClientError struct {
	Kind       Kind
	StatusCode int
	Message    string
}

func (e *ClientError) Error() string {
	return e.Message
}

// New creates a client error of the given kind
func New(kind Kind, statusCode int, message string) *ClientError {
	return &ClientError{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewValidation creates a 400 error for malformed or incomplete payloads
func NewValidation(message string) *ClientError {
	return New(KindValidation, http.StatusBadRequest, message)
}

// NewInvalidCredentials creates a 401 error for a username/password mismatch
func NewInvalidCredentials(message string) *ClientError {
	return New(KindInvalidCredentials, http.StatusUnauthorized, message)
}

// NewInvalidToken creates a 400 error for tokens failing signature or expiry checks
func NewInvalidToken(message string) *ClientError {
	return New(KindInvalidToken, http.StatusBadRequest, message)
}

// NewNotFound creates a 404 error
func NewNotFound(message string) *ClientError {
	return New(KindNotFound, http.StatusNotFound, message)
}

// NewConflict creates a 409 error
func NewConflict(message string) *ClientError {
	return New(KindConflict, http.StatusConflict, message)
}

// NewUnauthorized creates a 401 error for missing or rejected access tokens
func NewUnauthorized(message string) *ClientError {
	return New(KindUnauthorized, http.StatusUnauthorized, message)
}

// As returns the client error in err's chain, if any
func As(err error) (*ClientError, bool) {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsKind reports whether err's chain contains a client error of the given kind
func IsKind(err error, kind Kind) bool {
	ce, ok := As(err)
	return ok && ce.Kind == kind
}
