package utils

import (
	"strconv"
	"time"
)

// ParseDuration safely parses a duration string like "30s", falling
// back to 30 seconds on empty or malformed input.
func ParseDuration(d string) time.Duration {
	if d == "" {
		return 30 * time.Second
	}
	duration, err := time.ParseDuration(d)
	if err != nil {
		return 30 * time.Second
	}
	return duration
}

// FormatValue renders a statistic value without trailing zeros, so
// whole-number counts show as integers and ratios keep their digits.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
