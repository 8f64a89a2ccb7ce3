package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutTime     = "15:04"
	layoutDateTime = "2006-01-02 15:04:05"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseClock parses HH:MM.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(layoutTime, strings.TrimSpace(s))
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}
