package logger

import (
	"fmt"
	"time"

	"auth-api/pkg/config"

	"github.com/getsentry/sentry-go"
	sentrylogrus "github.com/getsentry/sentry-go/logrus"
	"github.com/sirupsen/logrus"
)

// Setup builds the application logger: JSON output, level from config and,
// when a DSN is configured, a Sentry hook for error and above.
// The returned flush function must be called before the process exits.
func Setup(cfg *config.LoggingConfig, environment string) (*Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
		log.WithField("level", cfg.Level).Warn("Unknown log level, falling back to info")
	}
	log.SetLevel(level)

	flush := func() {}

	if cfg.SentryDSN == "" {
		return New(log), flush, nil
	}

	options := sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: environment,
		Release:     cfg.AppVersion,
	}

	if err := sentry.Init(options); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize Sentry: %w", err)
	}

	levels := []logrus.Level{logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel}
	hook, err := sentrylogrus.New(levels, options)
	if err != nil {
		log.WithError(err).Error("Failed to initialize Sentry hook")
	} else {
		log.AddHook(hook)
		log.Info("Sentry integration initialized successfully")
		flush = func() {
			hook.Flush(2 * time.Second)
			sentry.Flush(2 * time.Second)
		}
	}

	return New(log), flush, nil
}
