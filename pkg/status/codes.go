package status

import "net/http"

// Response envelope status values
// success: request handled
// fail:    the caller sent something we reject (4xx)
// error:   the server failed (5xx)
const (
	Success = "success"
	Fail    = "fail"
	Error   = "error"
)

// FromHTTP returns the envelope status for an HTTP status code
func FromHTTP(code int) string {
	switch {
	case IsClientError(code):
		return Fail
	case IsServerError(code):
		return Error
	default:
		return Success
	}
}

// IsClientError returns true if the code is a client error code
func IsClientError(code int) bool {
	return code >= http.StatusBadRequest && code < http.StatusInternalServerError
}

// IsServerError returns true if the code is a server error code
func IsServerError(code int) bool {
	return code >= http.StatusInternalServerError && code < 600
}
