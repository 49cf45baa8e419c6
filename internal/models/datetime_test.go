package models

import (
	"testing"
	"time"
)

func TestCombineDateTime(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	hhmmss := "18:30:00"
	hhmm := "18:30"
	junk := "soon"

	cases := []struct {
		name      string
		date      string
		timeOfDay *string
		want      time.Time
	}{
		{"date and seconds time", "2025-06-20", &hhmmss, time.Date(2025, 6, 20, 18, 30, 0, 0, time.Local)},
		{"date and short time", "2025-06-20", &hhmm, time.Date(2025, 6, 20, 18, 30, 0, 0, time.Local)},
		{"date only", "2025-06-20", nil, time.Date(2025, 6, 20, 0, 0, 0, 0, time.Local)},
		{"full timestamp date", "2025-06-20T00:00:00Z", &hhmm, time.Date(2025, 6, 20, 18, 30, 0, 0, time.Local)},
		{"unparseable time degrades to midnight", "2025-06-20", &junk, time.Date(2025, 6, 20, 0, 0, 0, 0, time.Local)},
		{"empty date degrades to now", "", &hhmm, now},
		{"unparseable date degrades to now", "ayer", nil, now},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CombineDateTime(tc.date, tc.timeOfDay, now)
			if !got.Equal(tc.want) {
				t.Errorf("CombineDateTime(%q) = %v, want %v", tc.date, got, tc.want)
			}
		})
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, 6, 15, 23, 59, 59, 123, time.Local)
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	if got := StartOfDay(in); !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}
