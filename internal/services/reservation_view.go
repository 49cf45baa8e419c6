package services

import (
	"sort"
	"time"

	"gymapp/internal/models"
)

// ReservationFilter selects a derived subset of the reservation list.
type ReservationFilter string

const (
	FilterUpcoming  ReservationFilter = "proximas"
	FilterHistory   ReservationFilter = "historial"
	FilterCancelled ReservationFilter = "canceladas"
	FilterAll       ReservationFilter = "todas"
)

// DeriveView projects the full reservation list into the filtered, sorted
// view a screen renders. It is pure: no I/O, same inputs yield the same
// output, and the input slice is never mutated. Callers recompute it whenever
// the source list or the filter changes.
//
// Sorting is ascending by the session instant and applied to the full list
// before filtering, so switching filters never reorders rows. The
// upcoming/history boundary is the start of today: a confirmed reservation
// earlier today still counts as upcoming for display.
func DeriveView(all []models.Reservation, filter ReservationFilter, now time.Time) []models.Reservation {
	sorted := make([]models.Reservation, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EventTime(now).Before(sorted[j].EventTime(now))
	})

	if filter == FilterAll || filter == "" {
		return sorted
	}

	today := models.StartOfDay(now)
	out := make([]models.Reservation, 0, len(sorted))
	for _, r := range sorted {
		switch filter {
		case FilterUpcoming:
			if r.Status == models.ReservationStatusConfirmed && !r.EventTime(now).Before(today) {
				out = append(out, r)
			}
		case FilterHistory:
			if r.Status == models.ReservationStatusConfirmed && r.EventTime(now).Before(today) {
				out = append(out, r)
			}
		case FilterCancelled:
			if r.Status == models.ReservationStatusCancelled {
				out = append(out, r)
			}
		}
	}
	return out
}
