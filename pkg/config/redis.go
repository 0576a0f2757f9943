package config

import (
	"time"

	"auth-api/pkg/redis"
)

// LoadRedisConfig loads Redis configuration from environment variables,
// starting from redis.DefaultConfig
func LoadRedisConfig() *redis.Config {
	config := redis.DefaultConfig()

	config.Host = envString("REDIS_HOST", config.Host)
	config.Password = envString("REDIS_PASSWORD", config.Password)
	config.KeyPrefix = envString("REDIS_KEY_PREFIX", config.KeyPrefix)

	if port := envInt("REDIS_PORT", config.Port); port > 0 {
		config.Port = port
	}
	if db := envInt("REDIS_DB", config.DB); db >= 0 {
		config.DB = db
	}
	if maxConns := envInt("REDIS_MAX_CONNECTIONS", config.MaxConnections); maxConns > 0 {
		config.MaxConnections = maxConns
	}

	config.ConnTimeout = positiveDuration(envDuration("REDIS_CONN_TIMEOUT", config.ConnTimeout), config.ConnTimeout)
	config.ReadTimeout = positiveDuration(envDuration("REDIS_READ_TIMEOUT", config.ReadTimeout), config.ReadTimeout)
	config.WriteTimeout = positiveDuration(envDuration("REDIS_WRITE_TIMEOUT", config.WriteTimeout), config.WriteTimeout)

	return config
}

func positiveDuration(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
