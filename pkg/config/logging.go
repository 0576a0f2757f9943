package config

// LoggingConfig holds logger and error reporting settings
type LoggingConfig struct {
	Level      string
	SentryDSN  string
	AppVersion string
}

// LoadLoggingConfig loads logging configuration from environment variables
func LoadLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:      envString("LOG_LEVEL", "info"),
		SentryDSN:  envString("SENTRY_DSN", ""),
		AppVersion: envString("APP_VERSION", "dev"),
	}
}
