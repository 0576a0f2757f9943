package logger

import (
	"auth-api/internal/utils"

	"github.com/sirupsen/logrus"
)

// Logger wraps the logrus logger with additional functionality
type Logger struct {
	log *logrus.Logger
}

// New creates a new Logger instance
func New(log *logrus.Logger) *Logger {
	return &Logger{
		log: log,
	}
}

// SecureLog logs errors without sensitive data that might expose code or credentials.
// It returns the generated request id so callers can correlate it.
func (l *Logger) SecureLog(err error, message string, route string) string {
	requestID := utils.GenerateRequestID()

	// Log only necessary information, avoid including stack traces or request bodies
	l.log.WithFields(logrus.Fields{
		"requestID": requestID,
		"route":     route,
		"errorMsg":  err.Error(),
	}).Error(message)

	return requestID
}

// Logrus returns the underlying logrus logger
func (l *Logger) Logrus() *logrus.Logger {
	return l.log
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value any) *logrus.Entry {
	return l.log.WithField(key, value)
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields logrus.Fields) *logrus.Entry {
	return l.log.WithFields(fields)
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *logrus.Entry {
	return l.log.WithError(err)
}

// Info logs an info message
func (l *Logger) Info(args ...any) {
	l.log.Info(args...)
}
