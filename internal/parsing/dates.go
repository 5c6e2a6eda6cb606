package parsing

import (
	"strings"
	"time"
)

// dateLayouts are tried in order against cleaned date strings. Month-only and
// year-only values resolve to the first day of that month or year.
var dateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2006",
	"January 2006",
	"2006",
}

// ParseDate parses a human-readable date as it appears on a profile page,
// such as "Jan 2018", "January 2018", "2018", or "Jan 2, 2018". It returns
// nil when the value is empty or does not match any known layout.
func ParseDate(value string) *time.Time {
	cleaned := CleanText(value)
	if cleaned == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return &t
		}
	}
	return nil
}

// ParseOptionalDate parses an optional date value, treating nil as nil.
func ParseOptionalDate(value *string) *time.Time {
	if value == nil {
		return nil
	}
	return ParseDate(*value)
}

// IsPresent reports whether a date-range endpoint means "ongoing", matching
// the word "present" case-insensitively after trimming.
func IsPresent(value string) bool {
	return strings.EqualFold(CleanText(value), "present")
}

// DurationInDays returns the whole number of days between start and end.
// It returns nil when end is before start.
func DurationInDays(start, end time.Time) *int {
	if end.Before(start) {
		return nil
	}
	days := int(end.Sub(start).Hours() / 24)
	return &days
}

// DurationInDaysUntilNow returns the whole number of days from start to the
// current time, nil when start is in the future.
func DurationInDaysUntilNow(start time.Time) *int {
	return DurationInDays(start, time.Now())
}
