// Package timeutil normalizes incoming deadlines. Every value is
// interpreted relative to a configured local zone, trimmed to minute
// precision and stored in UTC.
package timeutil

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDeadline = errors.New("invalid deadline format")

// Date-only deadlines default to the end of the local day.
const defaultDeadlineClock = "23:59"

var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDeadline turns a raw deadline string into a normalized UTC time:
//   - "" → nil
//   - date-only → 23:59 in loc
//   - naive datetime → interpreted in loc
//   - datetime with offset → converted
//
// Seconds and sub-seconds are dropped in all cases.
func ParseDeadline(value string, loc *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.ParseInLocation("2006-01-02", value, loc); err == nil {
		// End of the named day by wall clock; adding a duration instead
		// drifts on DST-transition days.
		t = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, loc)
		return normalize(t), nil
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return normalize(t), nil
		}
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return normalize(t), nil
	}
	if t, err := time.Parse("2006-01-02T15:04Z07:00", value); err == nil {
		return normalize(t), nil
	}

	return nil, ErrInvalidDeadline
}

func normalize(t time.Time) *time.Time {
	normalized := t.Truncate(time.Minute).UTC()
	return &normalized
}

// LoadLocation resolves a zone name, falling back to UTC on failure so a
// bad TZ setting degrades deadline interpretation instead of boot.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
