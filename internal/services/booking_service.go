package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gymapp/internal/api"
	"gymapp/internal/models"
	"gymapp/internal/state"

	"github.com/rs/zerolog/log"
)

// --- Custom Coordinator Errors for Booking ---
var (
	ErrSessionNotFound   = errors.New("session not found in current list")
	ErrSessionFull       = errors.New("session has no available slots")
	ErrBookingInProgress = errors.New("a booking for this session is already in flight")
)

// User-facing messages follow the backend's language.
const (
	msgBookingSuccess  = "¡Reserva confirmada para %s!"
	msgBookingFallback = "No pudimos completar la reserva. Intenta nuevamente."
	msgSessionFull     = "La sesión ya no está disponible."
)

// --- BookingCoordinator Interface ---

// BookingCoordinator owns the available-sessions list for a screen and
// sequences booking mutations against it: per-session in-flight lock, the
// mutation itself, then a full refetch-and-replace. The list is never patched
// locally; the backend is the sole authority on capacity.
type BookingCoordinator interface {
	Refresh(ctx context.Context, filter models.SessionFilter) error
	Sessions() []models.Session
	Book(ctx context.Context, sessionID int64, observations string) (*models.Reservation, error)
}

// --- bookingCoordinator Implementation ---
type bookingCoordinator struct {
	schedule ScheduleService
	notifier *state.Notifier

	mu         sync.Mutex
	inFlight   map[int64]struct{}
	sessions   []models.Session
	lastFilter models.SessionFilter
}

// NewBookingCoordinator creates a new BookingCoordinator.
func NewBookingCoordinator(schedule ScheduleService, notifier *state.Notifier) BookingCoordinator {
	return &bookingCoordinator{
		schedule: schedule,
		notifier: notifier,
		inFlight: make(map[int64]struct{}),
	}
}

// Refresh replaces the session list with a fresh server read and remembers
// the filter for post-mutation refetches.
func (c *bookingCoordinator) Refresh(ctx context.Context, filter models.SessionFilter) error {
	sessions, err := c.schedule.FetchAvailableSessions(ctx, filter)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.sessions = sessions
	c.lastFilter = filter
	c.mu.Unlock()
	return nil
}

// Sessions returns the current list snapshot.
func (c *bookingCoordinator) Sessions() []models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Session, len(c.sessions))
	copy(out, c.sessions)
	return out
}

// Book reserves a slot on the given session. Duplicate submits on a session
// already in flight, and sessions with no availability, are rejected before
// any network I/O. On success the whole list is refetched; the local
// available counter is never decremented, since other clients race for the
// same slots.
func (c *bookingCoordinator) Book(ctx context.Context, sessionID int64, observations string) (*models.Reservation, error) {
	c.mu.Lock()
	if _, busy := c.inFlight[sessionID]; busy {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: id %d", ErrBookingInProgress, sessionID)
	}

	session, found := c.findSessionLocked(sessionID)
	if !found {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: id %d", ErrSessionNotFound, sessionID)
	}
	if !session.Bookable() {
		c.mu.Unlock()
		c.notifier.Show(state.BannerError, msgSessionFull)
		return nil, fmt.Errorf("%w: id %d", ErrSessionFull, sessionID)
	}

	c.inFlight[sessionID] = struct{}{}
	filter := c.lastFilter
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inFlight, sessionID)
		c.mu.Unlock()
	}()

	req := CreateReservationRequest{SessionID: sessionID}
	if observations != "" {
		req.Observations = &observations
	}

	reservation, err := c.schedule.CreateReservation(ctx, req)
	if err != nil {
		log.Error().Err(err).Int64("session_id", sessionID).Msg("Booking failed")
		c.notifier.Show(state.BannerError, api.ErrorMessage(err, msgBookingFallback))
		return nil, err
	}

	// Mutation completed; reconcile by refetching before reporting success.
	if refreshErr := c.Refresh(ctx, filter); refreshErr != nil {
		log.Error().Err(refreshErr).Msg("Post-booking refresh failed")
	}

	c.notifier.Show(state.BannerSuccess, fmt.Sprintf(msgBookingSuccess, session.Activity.Name))
	log.Info().Int64("session_id", sessionID).Int64("reservation_id", reservation.ID).Msg("Booking confirmed")
	return reservation, nil
}

// findSessionLocked looks up a session by id in the owned list. Caller holds mu.
func (c *bookingCoordinator) findSessionLocked(sessionID int64) (models.Session, bool) {
	for _, s := range c.sessions {
		if s.ID == sessionID {
			return s, true
		}
	}
	return models.Session{}, false
}
