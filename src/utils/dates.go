package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseCalendarDate parses a YYYY-MM-DD date. Full RFC3339 timestamps are
// accepted too and truncated to their calendar date.
func ParseCalendarDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if d, err := time.Parse(ShortDashDateLayout, value); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected %s", value, ShortDashDateLayout)
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}
