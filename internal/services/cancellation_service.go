package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gymapp/internal/api"
	"gymapp/internal/models"
	"gymapp/internal/state"

	"github.com/rs/zerolog/log"
)

// --- Custom Coordinator Errors for Cancellation ---
var (
	ErrReservationNotFound      = errors.New("reservation not found in current list")
	ErrReservationNotCancelable = errors.New("reservation is not cancelable")
	ErrCancellationInProgress   = errors.New("a cancellation for this reservation is already in flight")
)

const (
	msgCancelSuccess  = "Tu reserva fue cancelada."
	msgCancelFallback = "No pudimos cancelar la reserva. Intenta nuevamente."
)

// --- CancellationCoordinator Interface ---

// CancellationCoordinator owns the my-reservations list for a screen and
// sequences cancellations: eligibility check, per-reservation in-flight lock,
// the mutation, then a full refetch-and-replace.
type CancellationCoordinator interface {
	Refresh(ctx context.Context) error
	Reservations() []models.Reservation
	Cancel(ctx context.Context, reservationID int64, reason string) error
}

// IsCancelable applies the single eligibility rule: only confirmed
// reservations whose session instant is still at-or-after now. A session that
// already started is not cancelable, even earlier the same day.
func IsCancelable(r *models.Reservation, now time.Time) bool {
	return r.Status == models.ReservationStatusConfirmed && !r.EventTime(now).Before(now)
}

// --- cancellationCoordinator Implementation ---
type cancellationCoordinator struct {
	schedule ScheduleService
	notifier *state.Notifier
	now      func() time.Time

	mu           sync.Mutex
	inFlight     map[int64]struct{}
	reservations []models.Reservation
}

// NewCancellationCoordinator creates a new CancellationCoordinator. The clock
// is injectable for tests; pass nil for time.Now.
func NewCancellationCoordinator(schedule ScheduleService, notifier *state.Notifier, now func() time.Time) CancellationCoordinator {
	if now == nil {
		now = time.Now
	}
	return &cancellationCoordinator{
		schedule: schedule,
		notifier: notifier,
		now:      now,
		inFlight: make(map[int64]struct{}),
	}
}

// Refresh replaces the reservation list with a fresh server read.
func (c *cancellationCoordinator) Refresh(ctx context.Context) error {
	reservations, err := c.schedule.FetchMyReservations(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.reservations = reservations
	c.mu.Unlock()
	return nil
}

// Reservations returns the current list snapshot.
func (c *cancellationCoordinator) Reservations() []models.Reservation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Reservation, len(c.reservations))
	copy(out, c.reservations)
	return out
}

// Cancel cancels an existing reservation. A second call for the same
// reservation while one is in flight is a no-op rejection without network
// I/O. On success the list is refetched and a success banner is shown.
func (c *cancellationCoordinator) Cancel(ctx context.Context, reservationID int64, reason string) error {
	c.mu.Lock()
	if _, busy := c.inFlight[reservationID]; busy {
		c.mu.Unlock()
		return fmt.Errorf("%w: id %d", ErrCancellationInProgress, reservationID)
	}

	reservation, found := c.findReservationLocked(reservationID)
	if !found {
		c.mu.Unlock()
		return fmt.Errorf("%w: id %d", ErrReservationNotFound, reservationID)
	}
	if !IsCancelable(&reservation, c.now()) {
		c.mu.Unlock()
		return fmt.Errorf("%w: id %d", ErrReservationNotCancelable, reservationID)
	}

	c.inFlight[reservationID] = struct{}{}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inFlight, reservationID)
		c.mu.Unlock()
	}()

	req := CancelReservationRequest{}
	if reason != "" {
		req.Reason = &reason
	}

	resp, err := c.schedule.CancelReservation(ctx, reservationID, req)
	if err != nil {
		log.Error().Err(err).Int64("reservation_id", reservationID).Msg("Cancellation failed")
		c.notifier.Show(state.BannerError, api.ErrorMessage(err, msgCancelFallback))
		return err
	}

	// Mutation completed; reconcile by refetching before reporting success.
	if refreshErr := c.Refresh(ctx); refreshErr != nil {
		log.Error().Err(refreshErr).Msg("Post-cancellation refresh failed")
	}

	message := msgCancelSuccess
	if resp != nil && resp.Message != "" {
		message = resp.Message
	}
	c.notifier.Show(state.BannerSuccess, message)
	log.Info().Int64("reservation_id", reservationID).Msg("Reservation cancelled")
	return nil
}

// findReservationLocked looks up a reservation by id in the owned list. Caller holds mu.
func (c *cancellationCoordinator) findReservationLocked(reservationID int64) (models.Reservation, bool) {
	for _, r := range c.reservations {
		if r.ID == reservationID {
			return r, true
		}
	}
	return models.Reservation{}, false
}
