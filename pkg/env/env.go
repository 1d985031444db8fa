// Package env reads process environment variables with fallbacks, for the
// few knobs that live outside the envconfig-managed config struct.
package env

import "os"

// Get reads key from the environment, falling back when unset or empty.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
