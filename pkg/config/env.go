// Package config reads typed settings from environment variables.
// A blank variable means "use the default"; an unparseable one is logged and
// also falls back, so a typo never keeps the server from starting.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the trimmed value of key, or defaultValue when blank.
//
//	addr := GetEnvString("HTTP_ADDR", ":8080")
func GetEnvString(key, defaultValue string) string {
	return lookup(key, defaultValue, func(s string) (string, error) { return s, nil })
}

// GetEnvInt parses key with strconv.Atoi.
func GetEnvInt(key string, defaultValue int) int {
	return lookup(key, defaultValue, strconv.Atoi)
}

// GetEnvFloat parses key as a float64.
func GetEnvFloat(key string, defaultValue float64) float64 {
	return lookup(key, defaultValue, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

// GetEnvBool accepts anything strconv.ParseBool accepts ("1", "t", "true", "FALSE", ...).
func GetEnvBool(key string, defaultValue bool) bool {
	return lookup(key, defaultValue, strconv.ParseBool)
}

// GetEnvDuration parses key with time.ParseDuration ("1m", "30s").
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	return lookup(key, defaultValue, time.ParseDuration)
}

func lookup[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	v, err := parse(raw)
	if err != nil {
		shown := raw
		if secret(key) {
			shown = "****"
		}
		slog.Warn("invalid value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", shown),
			slog.String("error", err.Error()))
		return defaultValue
	}
	return v
}

// secret reports whether key names a credential whose value must not be logged.
func secret(key string) bool {
	k := strings.ToUpper(key)
	return strings.HasSuffix(k, "_KEY") || strings.HasSuffix(k, "_SECRET") ||
		strings.HasSuffix(k, "_TOKEN") || k == "DATABASE_URL"
}
