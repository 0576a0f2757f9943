package config

import (
	"net"
	"net/url"
	"time"
)

// DatabaseConfig describes the PostgreSQL connection and its pool
type DatabaseConfig struct {
	Username string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
	TimeZone string

	PoolMinSize    int
	PoolMaxSize    int
	ConnectTimeout time.Duration
	MaxIdleTime    time.Duration
	MaxLifetime    time.Duration

	PrepareCached bool
	MigrateOnBoot bool
}

// DSN returns the connection URL. Credentials are escaped so passwords may hold any character.
func (c *DatabaseConfig) DSN() string {
	query := url.Values{}
	query.Set("sslmode", c.SSLMode)
	query.Set("TimeZone", c.TimeZone)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: query.Encode(),
	}
	return dsn.String()
}

// LoadDatabaseConfig reads the DB_* environment variables
func LoadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Username: envString("DB_USERNAME", "postgres"),
		Password: envString("DB_PASSWORD", "postgres"),
		Host:     envString("DB_HOST", "localhost"),
		Port:     envString("DB_PORT", "5432"),
		Name:     envString("DB_NAME", "authentications"),
		SSLMode:  envString("DB_SSLMODE", "disable"),
		TimeZone: envString("DB_TIMEZONE", "UTC"),

		PoolMinSize:    envInt("DB_POOL_MIN_SIZE", 5),
		PoolMaxSize:    envInt("DB_POOL_MAX_SIZE", 20),
		ConnectTimeout: envDuration("DB_CONNECT_TIMEOUT", 10*time.Second),
		MaxIdleTime:    envDuration("DB_MAX_IDLE_TIME", 30*time.Minute),
		MaxLifetime:    envDuration("DB_MAX_LIFETIME", time.Hour),

		PrepareCached: envBool("DB_PREPARE_CACHED", true),
		MigrateOnBoot: envBool("DB_MIGRATE_ON_BOOT", true),
	}
}
