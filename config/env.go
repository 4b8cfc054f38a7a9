// Package config builds the runtime configuration from defaults, environment and flags.
package config

import (
	"os"
	"strconv"
	"time"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt is GetEnv for integers. Unparseable values fall back.
func GetEnvInt(key string, fallback int) int {
	if val, err := strconv.Atoi(GetEnv(key, "")); err == nil {
		return val
	}
	return fallback
}

// GetEnvBool is GetEnv for booleans. Unparseable values fall back.
func GetEnvBool(key string, fallback bool) bool {
	if val, err := strconv.ParseBool(GetEnv(key, "")); err == nil {
		return val
	}
	return fallback
}

// GetEnvDuration is GetEnv for durations such as "200ms". Unparseable values fall back.
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	if val, err := time.ParseDuration(GetEnv(key, "")); err == nil {
		return val
	}
	return fallback
}
