package services

import (
	"context"
	"errors"
	"fmt"

	"gymapp/internal/api"
	"gymapp/internal/models"

	"github.com/rs/zerolog/log"
)

// --- Custom Service Errors for Memberships ---
var (
	ErrFetchPlans         = errors.New("failed to fetch membership plans")
	ErrFetchSubscriptions = errors.New("failed to fetch subscriptions")
	ErrSubscribe          = errors.New("failed to acquire membership")
	ErrCancelSubscription = errors.New("failed to cancel subscription")
	ErrProcessPayment     = errors.New("failed to process payment")
	ErrInvalidPayment     = errors.New("invalid payment method")
)

// --- Membership DTOs ---

// SubscribeRequest is the body of POST suscripciones/. The backend infers the
// client and site from the token.
type SubscribeRequest struct {
	PlanID        int64                `json:"membresia"`
	PaymentMethod models.PaymentMethod `json:"metodo_pago"`
	Notes         string               `json:"notas,omitempty"`
}

// PaymentRequest is the body of POST suscripciones/procesar_pago/ (simulated
// payment).
type PaymentRequest struct {
	PlanID        int64                `json:"membresia"`
	PaymentMethod models.PaymentMethod `json:"metodo_pago"`
	CardNumber    *string              `json:"numero_tarjeta,omitempty"`
	CardHolder    *string              `json:"titular,omitempty"`
}

// --- MembershipService Interface ---

// MembershipService covers the membership catalog and the client's
// subscriptions. Reads are plain fetches; mutations follow the same
// mutate-then-refetch discipline as reservations: callers refetch
// subscriptions after Subscribe/CancelSubscription rather than patching.
type MembershipService interface {
	FetchActivePlans(ctx context.Context) ([]models.MembershipPlan, error)
	FetchMySubscriptions(ctx context.Context) ([]models.MembershipSubscription, error)
	Subscribe(ctx context.Context, req SubscribeRequest) (*models.MembershipSubscription, error)
	CancelSubscription(ctx context.Context, subscriptionID int64) error
	ProcessPayment(ctx context.Context, req PaymentRequest) error
}

// --- membershipService Implementation ---
type membershipService struct {
	client *api.Client
}

// NewMembershipService creates a new instance of MembershipService.
func NewMembershipService(client *api.Client) MembershipService {
	return &membershipService{client: client}
}

func (s *membershipService) FetchActivePlans(ctx context.Context) ([]models.MembershipPlan, error) {
	body, err := s.client.Get(ctx, "membresias/activas/", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchPlans, err)
	}
	return models.DecodeList[models.MembershipPlan](body), nil
}

func (s *membershipService) FetchMySubscriptions(ctx context.Context) ([]models.MembershipSubscription, error) {
	body, err := s.client.Get(ctx, "suscripciones/", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchSubscriptions, err)
	}
	return models.DecodeList[models.MembershipSubscription](body), nil
}

// Subscribe acquires a membership plan for the authenticated client.
func (s *membershipService) Subscribe(ctx context.Context, req SubscribeRequest) (*models.MembershipSubscription, error) {
	if req.PaymentMethod == "" {
		req.PaymentMethod = models.PaymentMethodCash
	}
	if !models.IsValidPaymentMethod(string(req.PaymentMethod)) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayment, req.PaymentMethod)
	}

	body, err := s.client.Post(ctx, "suscripciones/", req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubscribe, err)
	}

	subscription, _, err := models.DecodeEntity[models.MembershipSubscription](body)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrSubscribe, err)
	}
	log.Info().Int64("plan_id", req.PlanID).Msg("Membership acquired")
	return subscription, nil
}

func (s *membershipService) CancelSubscription(ctx context.Context, subscriptionID int64) error {
	path := fmt.Sprintf("suscripciones/%d/cancelar/", subscriptionID)
	if _, err := s.client.Post(ctx, path, struct{}{}); err != nil {
		return fmt.Errorf("%w: %w", ErrCancelSubscription, err)
	}
	log.Info().Int64("subscription_id", subscriptionID).Msg("Subscription cancelled")
	return nil
}

func (s *membershipService) ProcessPayment(ctx context.Context, req PaymentRequest) error {
	if !models.IsValidPaymentMethod(string(req.PaymentMethod)) {
		return fmt.Errorf("%w: %s", ErrInvalidPayment, req.PaymentMethod)
	}
	if _, err := s.client.Post(ctx, "suscripciones/procesar_pago/", req); err != nil {
		return fmt.Errorf("%w: %w", ErrProcessPayment, err)
	}
	return nil
}
