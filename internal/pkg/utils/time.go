package utils

import (
	"fmt"
	"time"
)

// ParseClock converts an "HH:MM" string into minutes after midnight.
func ParseClock(clock string) (int, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// FormatClock converts minutes after midnight into an "HH:MM" string.
// Values outside a single day are wrapped first.
func FormatClock(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
