package helpers

import (
	"time"

	"github.com/emre/postova/internal/pkg/logger"
)

// ParseDuration parses a duration string, falling back to defaultDuration
// when the value is empty or malformed.
func ParseDuration(value string, defaultDuration time.Duration) time.Duration {
	if value == "" {
		return defaultDuration
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn().Str("value", value).Dur("default", defaultDuration).Msg("Invalid duration, using default")
		return defaultDuration
	}
	return d
}
