package config

import (
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// GetEnv returns the trimmed value of an environment variable, or
// defaultValue when it is unset or blank.
func GetEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvDuration parses an environment variable as a time.Duration.
// Accepts formats like "300ms", "10s", "1m30s".
func GetEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := GetEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid duration", goerr.V("key", key), goerr.V("value", value))
	}
	return d, nil
}
