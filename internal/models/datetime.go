package models

import (
	"time"
)

const (
	// DateLayout is the calendar-date wire format.
	DateLayout = "2006-01-02"
)

// CombineDateTime builds a comparable instant from a wire date and an optional
// time-of-day. Missing time means midnight; an unparseable or empty date
// degrades to now rather than failing, since these values only feed ordering
// and eligibility checks.
func CombineDateTime(date string, timeOfDay *string, now time.Time) time.Time {
	if date == "" {
		return now
	}

	// Some endpoints return full timestamps for dates; take the date part.
	if len(date) > len(DateLayout) {
		date = date[:len(DateLayout)]
	}

	day, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return now
	}

	if timeOfDay == nil || *timeOfDay == "" {
		return day
	}

	hhmm := *timeOfDay
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.ParseInLocation(layout, hhmm, time.Local); err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, time.Local)
		}
	}
	return day
}

// StartOfDay truncates an instant to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
