package dates

import (
	"fmt"
	"time"
)

// ISO is the wire format for all calendar dates (yyyy-MM-dd).
const ISO = "2006-01-02"

// Parse parses a calendar date in ISO form. Parsing is strict: malformed
// input and impossible dates (e.g. a day 31 in a 30-day month) are rejected.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(ISO, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Days returns the inclusive day count between start and end, so a
// single-day range (start == end) counts as 1. An end before start or an
// unparseable date is an error.
func Days(start, end string) (int, error) {
	s, err := Parse(start)
	if err != nil {
		return 0, err
	}
	e, err := Parse(end)
	if err != nil {
		return 0, err
	}
	days := int(e.Sub(s).Hours()/24) + 1
	if days <= 0 {
		return 0, fmt.Errorf("end date %s before start date %s", end, start)
	}
	return days, nil
}
