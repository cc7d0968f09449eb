package utils

import (
	"strings"
	"time"
)

const (
	layoutDate = "2006-01-02"
	layoutTime = "15:04"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Today returns the current date as YYYY-MM-DD, the format reservation
// and registration dates travel in.
func Today() string {
	return time.Now().Format(layoutDate)
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseTimeOfDay parses HH:MM.
func ParseTimeOfDay(s string) (time.Time, error) {
	return time.Parse(layoutTime, strings.TrimSpace(s))
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatLongDate renders a date for printable reports, e.g. "02/01/2006".
func FormatLongDate(t time.Time) string {
	return t.In(time.Local).Format("02/01/2006")
}
