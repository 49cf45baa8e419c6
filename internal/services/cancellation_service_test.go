package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gymapp/internal/models"
	"gymapp/internal/state"
)

func confirmedAt(id int64, date, start string) models.Reservation {
	return models.Reservation{
		ID:          id,
		Status:      models.ReservationStatusConfirmed,
		SessionDate: date,
		StartTime:   &start,
	}
}

func TestIsCancelable(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	future := confirmedAt(1, "2025-06-16", "09:00")
	if !IsCancelable(&future, now) {
		t.Error("future confirmed reservation must be cancelable")
	}

	laterToday := confirmedAt(2, "2025-06-15", "18:00")
	if !IsCancelable(&laterToday, now) {
		t.Error("later-today reservation must be cancelable")
	}

	startedToday := confirmedAt(3, "2025-06-15", "08:00")
	if IsCancelable(&startedToday, now) {
		t.Error("a session that already started must not be cancelable, even today")
	}

	past := confirmedAt(4, "2025-06-10", "09:00")
	if IsCancelable(&past, now) {
		t.Error("past reservation must not be cancelable")
	}

	cancelled := confirmedAt(5, "2025-06-20", "09:00")
	cancelled.Status = models.ReservationStatusCancelled
	if IsCancelable(&cancelled, now) {
		t.Error("already-cancelled reservation must not be cancelable")
	}

	pending := confirmedAt(6, "2025-06-20", "09:00")
	pending.Status = models.ReservationStatusPending
	if IsCancelable(&pending, now) {
		t.Error("pending reservation must not be cancelable")
	}
}

func TestCancelSuccess(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	fake := &fakeSchedule{
		reservations:   []models.Reservation{confirmedAt(10, "2025-06-20", "09:00")},
		cancelResponse: &CancelReservationResponse{Message: "Reserva cancelada exitosamente.", Status: "cancelada"},
	}
	notifier := state.NewNotifier(time.Hour, nil)
	coord := NewCancellationCoordinator(fake, notifier, func() time.Time { return now })

	if err := coord.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if err := coord.Cancel(context.Background(), 10, "viaje"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	if fake.cancelCalls != 1 {
		t.Errorf("cancel calls = %d, want 1", fake.cancelCalls)
	}
	if fake.fetchReservationCalls != 2 {
		t.Errorf("fetch calls = %d, want 2 (initial + post-cancel)", fake.fetchReservationCalls)
	}
	banner := notifier.Current()
	if banner == nil || banner.Kind != state.BannerSuccess || banner.Message != "Reserva cancelada exitosamente." {
		t.Errorf("banner = %+v", banner)
	}
}

func TestCancelIneligibleWithoutNetwork(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	fake := &fakeSchedule{
		reservations: []models.Reservation{confirmedAt(11, "2025-06-15", "08:00")}, // already started
	}
	coord := NewCancellationCoordinator(fake, state.NewNotifier(time.Hour, nil), func() time.Time { return now })

	if err := coord.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	err := coord.Cancel(context.Background(), 11, "")
	if !errors.Is(err, ErrReservationNotCancelable) {
		t.Fatalf("err = %v, want ErrReservationNotCancelable", err)
	}
	if fake.cancelCalls != 0 {
		t.Errorf("cancel calls = %d, want 0", fake.cancelCalls)
	}
}

func TestCancelUnknownReservation(t *testing.T) {
	fake := &fakeSchedule{}
	coord := NewCancellationCoordinator(fake, state.NewNotifier(time.Hour, nil), nil)

	err := coord.Cancel(context.Background(), 404, "")
	if !errors.Is(err, ErrReservationNotFound) {
		t.Fatalf("err = %v, want ErrReservationNotFound", err)
	}
}

func TestCancelFailureShowsErrorBanner(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	fake := &fakeSchedule{
		reservations: []models.Reservation{confirmedAt(12, "2025-06-20", "09:00")},
		cancelErr:    errors.New("boom"),
	}
	notifier := state.NewNotifier(time.Hour, nil)
	coord := NewCancellationCoordinator(fake, notifier, func() time.Time { return now })

	if err := coord.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if err := coord.Cancel(context.Background(), 12, ""); err == nil {
		t.Fatal("want error")
	}

	banner := notifier.Current()
	if banner == nil || banner.Kind != state.BannerError {
		t.Fatalf("banner = %+v, want error banner", banner)
	}
	if banner.Message != "No pudimos cancelar la reserva. Intenta nuevamente." {
		t.Errorf("banner message = %q", banner.Message)
	}
	if fake.fetchReservationCalls != 1 {
		t.Errorf("fetch calls = %d, want 1 (no refetch on failure)", fake.fetchReservationCalls)
	}
}
