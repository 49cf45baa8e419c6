package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TokenSource supplies and stores the bearer credentials the client attaches
// to requests. Implemented by auth.Store.
type TokenSource interface {
	AccessToken() (string, error)
	RefreshToken() (string, error)
	SetAccessToken(token string) error
	Clear() error
}

// Client is the HTTP client for the gym backend. It attaches the bearer
// token to every request, transparently performs exactly one refresh-and-retry
// on a 401, and maps failures onto the package error taxonomy.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient creates a Client for the given versioned base URL. The timeout is
// client-wide and fixed; a request that exceeds it surfaces as ErrNetwork.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// Get issues an authenticated GET. Query may be nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, "")
}

// Post issues an authenticated POST with a JSON body. Mutating requests carry
// a client-generated idempotency key so a retry after an ambiguous timeout
// cannot double-apply server-side.
func (c *Client) Post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, body, uuid.NewString())
}

// Patch issues an authenticated PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body, uuid.NewString())
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, idempotencyKey string) ([]byte, error) {
	respBody, status, err := c.send(ctx, method, path, query, body, idempotencyKey)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized {
		// One silent refresh-and-retry; a second 401 is fatal.
		if refreshErr := c.refresh(ctx); refreshErr != nil {
			c.clearCredentials()
			return nil, fmt.Errorf("%w: token refresh failed", ErrAuthExpired)
		}

		respBody, status, err = c.send(ctx, method, path, query, body, idempotencyKey)
		if err != nil {
			return nil, err
		}
		if status == http.StatusUnauthorized {
			c.clearCredentials()
			return nil, fmt.Errorf("%w: request rejected after refresh", ErrAuthExpired)
		}
	}

	if status < 200 || status > 299 {
		return nil, &APIError{StatusCode: status, Message: extractMessage(respBody)}
	}
	return respBody, nil
}

// send performs a single HTTP round trip and returns the raw body and status.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body interface{}, idempotencyKey string) ([]byte, int, error) {
	endpoint := c.baseURL + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("X-Idempotency-Key", idempotencyKey)
	}
	if token, err := c.tokens.AccessToken(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", method).Str("path", path).Msg("Request transport failure")
		return nil, 0, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: reading response: %v", ErrNetwork, err)
	}
	return respBody, resp.StatusCode, nil
}

// refresh exchanges the stored refresh token for a new access token. The
// refresh call itself goes out unauthenticated.
func (c *Client) refresh(ctx context.Context) error {
	refreshToken, err := c.tokens.RefreshToken()
	if err != nil || refreshToken == "" {
		return fmt.Errorf("no refresh token available")
	}

	payload, _ := json.Marshal(map[string]string{"refresh": refreshToken})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"token/refresh/", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("refresh rejected with status %d", resp.StatusCode)
	}

	var tokenResp struct {
		Access string `json:"access"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil || tokenResp.Access == "" {
		return fmt.Errorf("malformed refresh response")
	}

	if err := c.tokens.SetAccessToken(tokenResp.Access); err != nil {
		return fmt.Errorf("failed to store refreshed token: %w", err)
	}
	log.Debug().Msg("Access token refreshed")
	return nil
}

func (c *Client) clearCredentials() {
	if err := c.tokens.Clear(); err != nil {
		log.Error().Err(err).Msg("Failed to clear stored credentials")
	}
}
