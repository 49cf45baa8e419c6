package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"gymapp/internal/api"
	"gymapp/internal/models"

	"gymapp/pkg/utils"
)

// --- Custom Service Errors for Schedule ---
var (
	ErrFetchSessions     = errors.New("failed to fetch available sessions")
	ErrFetchActivities   = errors.New("failed to fetch available activities")
	ErrFetchReservations = errors.New("failed to fetch reservations")
	ErrCreateReservation = errors.New("failed to create reservation")
	ErrCancelReservation = errors.New("failed to cancel reservation")
)

// --- Schedule DTOs ---

// CreateReservationRequest is the body of POST horarios/reservas-clases/.
type CreateReservationRequest struct {
	SessionID    int64   `json:"sesion_clase"`
	Observations *string `json:"observaciones,omitempty"`
}

// CancelReservationRequest is the body of POST horarios/reservas-clases/{id}/cancelar/.
type CancelReservationRequest struct {
	Reason *string `json:"motivo,omitempty"`
}

// CancelReservationResponse is the backend's acknowledgement.
type CancelReservationResponse struct {
	Message string `json:"mensaje"`
	Status  string `json:"estado,omitempty"`
}

// --- ScheduleService Interface ---

// ScheduleService is the network boundary for sessions and reservations. List
// calls normalize the backend's response shapes and never re-sort; retries are
// a user action at the caller, never automatic here.
type ScheduleService interface {
	FetchAvailableSessions(ctx context.Context, filter models.SessionFilter) ([]models.Session, error)
	FetchAvailableActivities(ctx context.Context) ([]models.Activity, error)
	FetchMyReservations(ctx context.Context) ([]models.Reservation, error)
	CreateReservation(ctx context.Context, req CreateReservationRequest) (*models.Reservation, error)
	CancelReservation(ctx context.Context, reservationID int64, req CancelReservationRequest) (*CancelReservationResponse, error)
}

// --- scheduleService Implementation ---
type scheduleService struct {
	client *api.Client
}

// NewScheduleService creates a new instance of ScheduleService.
func NewScheduleService(client *api.Client) ScheduleService {
	return &scheduleService{client: client}
}

// FetchAvailableSessions requests the bookable sessions, optionally filtered
// by activity and date range. Absent filter fields mean no constraint.
// Ordering is whatever the backend returns (ascending by date).
func (s *scheduleService) FetchAvailableSessions(ctx context.Context, filter models.SessionFilter) ([]models.Session, error) {
	query := url.Values{}
	query.Set("ordering", "fecha")
	if filter.ActivityID != nil {
		query.Set("tipo_actividad", utils.Int64ToStr(*filter.ActivityID))
	}
	if filter.DateFrom != nil {
		query.Set("fecha_desde", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query.Set("fecha_hasta", *filter.DateTo)
	}

	body, err := s.client.Get(ctx, "horarios/sesiones/disponibles/", query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchSessions, err)
	}
	return models.DecodeList[models.Session](body), nil
}

// FetchAvailableActivities requests the activity catalog with availability
// counts.
func (s *scheduleService) FetchAvailableActivities(ctx context.Context) ([]models.Activity, error) {
	body, err := s.client.Get(ctx, "horarios/actividades/disponibles/", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchActivities, err)
	}
	return models.DecodeList[models.Activity](body), nil
}

// FetchMyReservations requests the authenticated client's reservations.
func (s *scheduleService) FetchMyReservations(ctx context.Context) ([]models.Reservation, error) {
	body, err := s.client.Get(ctx, "horarios/reservas-clases/mis_reservas/", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchReservations, err)
	}
	return models.DecodeList[models.Reservation](body), nil
}

// CreateReservation books a session. The backend may answer with the bare
// reservation or a {mensaje, data} envelope around it.
func (s *scheduleService) CreateReservation(ctx context.Context, req CreateReservationRequest) (*models.Reservation, error) {
	body, err := s.client.Post(ctx, "horarios/reservas-clases/", req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateReservation, err)
	}

	reservation, _, err := models.DecodeEntity[models.Reservation](body)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrCreateReservation, err)
	}
	return reservation, nil
}

// CancelReservation cancels an existing reservation.
func (s *scheduleService) CancelReservation(ctx context.Context, reservationID int64, req CancelReservationRequest) (*CancelReservationResponse, error) {
	path := fmt.Sprintf("horarios/reservas-clases/%d/cancelar/", reservationID)
	body, err := s.client.Post(ctx, path, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCancelReservation, err)
	}

	var resp CancelReservationResponse
	if decoded, _, err := models.DecodeEntity[CancelReservationResponse](body); err == nil {
		resp = *decoded
	}
	return &resp, nil
}
