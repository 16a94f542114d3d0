package validation

import (
	"fmt"
	"time"
)

// Today returns the current local calendar date at midnight UTC, the form
// every date column is stored and compared in.
func Today() time.Time {
	return DateOf(time.Now())
}

// DateOf drops the clock part of t, keeping its calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// CheckDate parses an optional date field, recording a field error when the
// value is malformed.
func CheckDate(fe FieldErrors, field string, value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, err := ParseDate(*value)
	if err != nil {
		fe.Add(field, MsgDateFormat)
		return nil
	}
	return &t
}
