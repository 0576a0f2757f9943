package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// lookupEnv is os.LookupEnv treating blank values as unset
func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return strings.TrimSpace(value), true
}

func envString(key, fallback string) string {
	if value, ok := lookupEnv(key); ok {
		return value
	}
	return fallback
}

// envParsed reads key through parse, keeping fallback when the variable is unset or malformed
func envParsed[T any](key string, fallback T, parse func(string) (T, error)) T {
	value, ok := lookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := parse(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envInt(key string, fallback int) int {
	return envParsed(key, fallback, strconv.Atoi)
}

func envBool(key string, fallback bool) bool {
	return envParsed(key, fallback, strconv.ParseBool)
}

// envDuration accepts a Go duration ("90s", "1h") or a bare number of seconds
func envDuration(key string, fallback time.Duration) time.Duration {
	return envParsed(key, fallback, parseDuration)
}

func parseDuration(value string) (time.Duration, error) {
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	return time.ParseDuration(value)
}

// envList splits a comma separated variable, dropping empty items
func envList(key string, fallback []string) []string {
	value, ok := lookupEnv(key)
	if !ok {
		return fallback
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
