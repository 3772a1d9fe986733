package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts a HH:MM string into minutes since midnight.
func ParseClock(value string) (int, error) {
	hourString, minuteString, found := strings.Cut(value, ":")
	if !found {
		return 0, fmt.Errorf("invalid time format %q", value)
	}

	hour, err := strconv.Atoi(hourString)
	if err != nil {
		return 0, fmt.Errorf("invalid time format %q", value)
	}
	minute, err := strconv.Atoi(minuteString)
	if err != nil {
		return 0, fmt.Errorf("invalid time format %q", value)
	}

	if hour < 0 || hour >= 24 || minute < 0 || minute >= 60 {
		return 0, fmt.Errorf("time %q out of range", value)
	}

	return hour*60 + minute, nil
}

// FormatClock converts minutes since midnight back into a zero padded HH:MM string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
