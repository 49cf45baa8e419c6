package services

import (
	"reflect"
	"testing"
	"time"

	"gymapp/internal/models"
)

func viewFixture() []models.Reservation {
	start := func(s string) *string { return &s }
	return []models.Reservation{
		{ID: 1, Status: models.ReservationStatusConfirmed, SessionDate: "2025-06-20", StartTime: start("09:00")},
		{ID: 2, Status: models.ReservationStatusConfirmed, SessionDate: "2025-06-10", StartTime: start("09:00")},
		{ID: 3, Status: models.ReservationStatusCancelled, SessionDate: "2025-06-18", StartTime: start("09:00")},
		{ID: 4, Status: models.ReservationStatusConfirmed, SessionDate: "2025-06-15", StartTime: start("07:00")}, // earlier today
		{ID: 5, Status: models.ReservationStatusConfirmed, SessionDate: "2025-06-16", StartTime: start("09:00")},
	}
}

func ids(rs []models.Reservation) []int64 {
	out := make([]int64, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestDeriveViewSortsAscending(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	got := DeriveView(viewFixture(), FilterAll, now)
	want := []int64{2, 4, 5, 3, 1}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("order = %v, want %v", ids(got), want)
	}
}

func TestDeriveViewUpcomingBoundaryIsStartOfToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	got := DeriveView(viewFixture(), FilterUpcoming, now)
	// The 07:00 reservation already started, but for display it still counts
	// as upcoming: the boundary is the start of today, not the instant.
	want := []int64{4, 5, 1}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("upcoming = %v, want %v", ids(got), want)
	}
}

func TestDeriveViewHistory(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	got := DeriveView(viewFixture(), FilterHistory, now)
	if !reflect.DeepEqual(ids(got), []int64{2}) {
		t.Errorf("history = %v, want [2]", ids(got))
	}
}

func TestDeriveViewCancelled(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	got := DeriveView(viewFixture(), FilterCancelled, now)
	if !reflect.DeepEqual(ids(got), []int64{3}) {
		t.Errorf("cancelled = %v, want [3]", ids(got))
	}
}

func TestDeriveViewPureAndIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	input := viewFixture()
	inputCopy := viewFixture()

	first := DeriveView(input, FilterUpcoming, now)
	second := DeriveView(input, FilterUpcoming, now)

	if !reflect.DeepEqual(first, second) {
		t.Error("same inputs produced different views")
	}
	if !reflect.DeepEqual(input, inputCopy) {
		t.Error("input slice was mutated")
	}
}

func TestDeriveViewEmptyFilterMeansAll(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	all := DeriveView(viewFixture(), FilterAll, now)
	blank := DeriveView(viewFixture(), "", now)
	if !reflect.DeepEqual(ids(all), ids(blank)) {
		t.Errorf("blank filter = %v, all = %v", ids(blank), ids(all))
	}
}
