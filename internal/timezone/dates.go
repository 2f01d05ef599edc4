package timezone

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
}

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// ParseDate accepts YYYY-MM-DD, DD/MM/YYYY and RFC3339-like timestamps.
// dateOnly reports whether the input had no time component; such values
// are midnight in loc.
func ParseDate(value string, loc *time.Location) (t time.Time, dateOnly bool, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false, ErrInvalidDate
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, value, loc); err == nil {
			return parsed, true, nil
		}
	}
	for _, layout := range instantLayouts {
		if parsed, err := time.ParseInLocation(layout, value, loc); err == nil {
			return parsed, false, nil
		}
	}

	return time.Time{}, false, ErrInvalidDate
}

// ParseBirthdate reads a calendar date as midnight UTC, so that month and
// day survive regardless of the server zone.
func ParseBirthdate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, dateOnly, err := ParseDate(value, time.UTC)
	if err != nil {
		return nil, err
	}
	if !dateOnly {
		t = t.UTC()
	}
	return &t, nil
}
