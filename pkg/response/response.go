package response

import (
	"net/http"

	"auth-api/pkg/apperror"
	"auth-api/pkg/status"

	"github.com/gin-gonic/gin"
)

// GenericErrorMessage is the only detail a client sees for a server failure
const GenericErrorMessage = "Internal server error, please try again later"

// Envelope is the body of every API response
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorLogger records server failures without leaking them to the client
type ErrorLogger interface {
	SecureLog(err error, message string, route string) string
}

// New creates an envelope whose status follows the HTTP status code
func New(code int, message string, data any) Envelope {
	return Envelope{Status: status.FromHTTP(code), Message: message, Data: data}
}

// Success writes a success envelope
func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, New(code, message, data))
}

// Error classifies err and writes exactly one response.
// Client errors become fail with their own status code. Anything else is logged
// and becomes a 500 with a generic message.
func Error(c *gin.Context, log ErrorLogger, err error, route string) {
	if ce, ok := apperror.As(err); ok {
		c.JSON(ce.StatusCode, New(ce.StatusCode, ce.Message, nil))
		return
	}

	log.SecureLog(err, "Unhandled server error", route)
	c.JSON(http.StatusInternalServerError, New(http.StatusInternalServerError, GenericErrorMessage, nil))
}

// AbortWithError is Error for middleware: the remaining handlers are skipped
func AbortWithError(c *gin.Context, log ErrorLogger, err error, route string) {
	Error(c, log, err, route)
	c.Abort()
}
