package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const hoursPerDay = 24

// ParseHour parses an "HH:00" time of day into its hour. "24:00" is
// accepted as the end of the day.
func ParseHour(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > hoursPerDay {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	if mm != "00" {
		return 0, fmt.Errorf("time %q is not on the hour", s)
	}
	return h, nil
}

// FormatHour renders an hour as "HH:00". 24 renders as "24:00".
func FormatHour(h int) string {
	return fmt.Sprintf("%02d:00", h)
}

// ParseDay parses a calendar day given either as "YYYY-MM-DD" or as an
// RFC 3339 timestamp, and truncates it to UTC midnight.
func ParseDay(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return truncateDay(t), nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// calendarDays counts the calendar days from start to end.
func calendarDays(start, end time.Time) int {
	return int(truncateDay(end).Sub(truncateDay(start)).Hours() / 24)
}
