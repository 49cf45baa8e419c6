package services

import (
	"context"
	"errors"
	"fmt"

	"gymapp/internal/api"
	"gymapp/internal/models"
)

// --- Custom Service Errors for Profile ---
var (
	ErrFetchProfile  = errors.New("failed to fetch profile")
	ErrUpdateProfile = errors.New("failed to update profile")
)

// --- ProfileService Interface ---

// ProfileService reads and updates the authenticated client's profile.
type ProfileService interface {
	FetchMyProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error)
}

// --- profileService Implementation ---
type profileService struct {
	client *api.Client
}

// NewProfileService creates a new instance of ProfileService.
func NewProfileService(client *api.Client) ProfileService {
	return &profileService{client: client}
}

func (s *profileService) FetchMyProfile(ctx context.Context) (*models.Profile, error) {
	body, err := s.client.Get(ctx, "clientes/mi_perfil/", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchProfile, err)
	}

	profile, _, err := models.DecodeEntity[models.Profile](body)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrFetchProfile, err)
	}
	return profile, nil
}

// UpdateProfile PATCHes the editable fields and returns the updated profile.
// The update endpoint wraps its result in a {mensaje, data} envelope.
func (s *profileService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error) {
	body, err := s.client.Patch(ctx, "clientes/actualizar_perfil/", update)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpdateProfile, err)
	}

	profile, _, err := models.DecodeEntity[models.Profile](body)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUpdateProfile, err)
	}
	return profile, nil
}
