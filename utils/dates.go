// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 0, t.Location())
}

// CombineDateTime merges a date with an "HH:MM" clock value. An unparsable
// clock value falls back to midnight.
func CombineDateTime(date time.Time, clock string) time.Time {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return BeginningOfDay(date)
	}
	year, month, day := date.Date()
	return time.Date(year, month, day, parsed.Hour(), parsed.Minute(), 0, 0, date.Location())
}
