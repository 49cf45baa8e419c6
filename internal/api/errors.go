package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// --- Client-side error taxonomy ---
var (
	// ErrNetwork covers transport failures and timeouts: no usable response
	// was received. A timed-out request may still have landed server-side,
	// so callers reconcile by refetching, never by assuming.
	ErrNetwork = errors.New("network error")

	// ErrAuthExpired is fatal: the refresh exchange failed (or a retried
	// request 401'd again), stored credentials were cleared, and the user
	// must sign in again.
	ErrAuthExpired = errors.New("authentication expired")
)

// APIError is a non-2xx response with whatever message the backend supplied.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// ErrorMessage extracts a user-facing message from an error, with the given
// fallback for anything that carries no backend-provided text. Coordinators
// use this so mutation failures always produce visible feedback.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// messageKeys are the backend error-field names known to carry text, probed
// in order.
var messageKeys = []string{"error", "detail", "message", "mensaje"}

// extractMessage pulls a human-readable message out of an error response
// body. Fields may be plain strings or nested objects with their own message
// field; anything unrecognized yields "" and the caller's generic fallback
// applies.
func extractMessage(body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	for _, key := range messageKeys {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(raw, &nested); err == nil {
			for _, nestedKey := range []string{"message", "detail"} {
				if nestedRaw, ok := nested[nestedKey]; ok {
					if err := json.Unmarshal(nestedRaw, &s); err == nil && s != "" {
						return s
					}
				}
			}
		}
	}
	return ""
}
