package dto

import "time"

const dateOnly = "2006-01-02"

// ParseDate accepts a calendar date or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// EndOfDay normalizes the time component to 23:59:59.999 so a due-date
// filter includes everything due on the given day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999_000_000, t.Location())
}
