package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Wire formats used by the backend
const (
	// TimestampLayout is ISO-8601 with millisecond precision in UTC
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
	// DateLayout is the date-only format of night watches
	DateLayout = "2006-01-02"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// FormatTimestamp renders t as a UTC ISO-8601 timestamp
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FormatDate renders the calendar date of t in its own location
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
