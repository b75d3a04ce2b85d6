package subtrack

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for dates entered by callers (ISO 8601 day).
const DateLayout = "2006-01-02"

// renewalPeriodDays approximates one billing month. Months vary in length;
// a fixed 30 days keeps the renewal arithmetic simple.
const renewalPeriodDays = 30

// ParseDate parses a YYYY-MM-DD string into a midnight-UTC date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not in YYYY-MM-DD form", ErrInvalidInput, value)
	}
	return StartOfDay(t), nil
}

// StartOfDay truncates t to midnight UTC. All renewal-date comparisons are
// calendar-day comparisons, so every date entering the registry goes
// through this.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NextRenewalDate returns the renewal date one period ahead of today.
func NextRenewalDate(today time.Time) time.Time {
	return StartOfDay(today).AddDate(0, 0, renewalPeriodDays)
}
