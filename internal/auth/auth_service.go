package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gymapp/internal/api"
	"gymapp/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// --- Custom Service Errors ---
var (
	ErrLoginFailed        = errors.New("login failed")
	ErrRegistrationFailed = errors.New("registration failed")
)

// Service handles authentication against the backend and keeps the local
// store in sync.
type Service struct {
	client *api.Client
	store  *Store
}

// NewService creates a new auth Service.
func NewService(client *api.Client, store *Store) *Service {
	return &Service{client: client, store: store}
}

// Login exchanges credentials for a token pair and persists it.
func (s *Service) Login(ctx context.Context, email, password string) (*models.AuthUser, error) {
	body := map[string]string{"email": email, "password": password}
	respBody, err := s.client.Post(ctx, "token/", body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	var pair models.TokenPair
	if err := json.Unmarshal(respBody, &pair); err != nil || pair.Access == "" {
		return nil, fmt.Errorf("%w: malformed token response", ErrLoginFailed)
	}

	if err := s.store.SetTokens(pair.Access, pair.Refresh); err != nil {
		return nil, fmt.Errorf("failed to persist tokens: %w", err)
	}

	log.Info().Str("email", email).Msg("Login succeeded")
	return pair.User, nil
}

// Register creates a new client account. The caller logs in afterwards; the
// register endpoint does not return tokens.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) error {
	if _, err := s.client.Post(ctx, "registro/cliente/", req); err != nil {
		return fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}
	log.Info().Str("email", req.Email).Msg("Registration succeeded")
	return nil
}

// Logout discards the stored credentials. Purely local; the backend keeps no
// session state to tear down.
func (s *Service) Logout() error {
	return s.store.Clear()
}

// IsAuthenticated reports whether usable credentials are on hand: a live
// access token, or an expired one alongside a refresh token the transport can
// still exchange.
func (s *Service) IsAuthenticated() bool {
	access, err := s.store.AccessToken()
	if err != nil || access == "" {
		return false
	}

	expiry, err := TokenExpiry(access)
	if err != nil || expiry.After(time.Now()) {
		// Unreadable expiry is left for the backend to judge.
		return true
	}

	refresh, err := s.store.RefreshToken()
	return err == nil && refresh != ""
}

// TokenExpiry peeks at a JWT's exp claim without verifying the signature.
// The client has no signing key; verification is the backend's job.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, fmt.Errorf("token has no expiry claim")
	}
	return expiry.Time, nil
}
