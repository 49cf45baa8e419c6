package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type fakeTokens struct {
	mu      sync.Mutex
	access  string
	refresh string
	cleared bool
}

func (f *fakeTokens) AccessToken() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.access, nil
}

func (f *fakeTokens) RefreshToken() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refresh, nil
}

func (f *fakeTokens) SetAccessToken(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.access = token
	return nil
}

func (f *fakeTokens) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.access = ""
	f.refresh = ""
	f.cleared = true
	return nil
}

func (f *fakeTokens) wasCleared() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cleared
}

func TestGetAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, &fakeTokens{access: "tok-1"})
	if _, err := client.Get(context.Background(), "horarios/sesiones/disponibles/", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-1")
	}
}

func TestRefreshRetryOnce(t *testing.T) {
	tokens := &fakeTokens{access: "stale", refresh: "refresh-ok"}
	var keys []string
	var refreshCalls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/token/refresh/" {
			refreshCalls++
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["refresh"] != "refresh-ok" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(map[string]string{"access": "fresh"})
			return
		}

		keys = append(keys, r.Header.Get("X-Idempotency-Key"))
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"token expirado"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, tokens)
	body, err := client.Post(context.Background(), "horarios/reservas-clases/", map[string]int{"sesion_clase": 5})
	if err != nil {
		t.Fatalf("Post after refresh: %v", err)
	}
	if string(body) != `{"id":1}` {
		t.Errorf("body = %s", body)
	}
	if refreshCalls != 1 {
		t.Errorf("refresh calls = %d, want 1", refreshCalls)
	}
	if tokens.access != "fresh" {
		t.Errorf("stored access = %q, want %q", tokens.access, "fresh")
	}
	if len(keys) != 2 || keys[0] == "" || keys[0] != keys[1] {
		t.Errorf("idempotency keys across retry = %v, want the same non-empty key twice", keys)
	}
}

func TestRefreshFailureClearsCredentials(t *testing.T) {
	tokens := &fakeTokens{access: "stale", refresh: "bad"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, tokens)
	_, err := client.Get(context.Background(), "clientes/mi_perfil/", nil)
	if !errors.Is(err, ErrAuthExpired) {
		t.Fatalf("err = %v, want ErrAuthExpired", err)
	}
	if !tokens.wasCleared() {
		t.Error("credentials were not cleared")
	}
}

func TestSecondUnauthorizedIsFatal(t *testing.T) {
	tokens := &fakeTokens{access: "stale", refresh: "refresh-ok"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/token/refresh/" {
			json.NewEncoder(w).Encode(map[string]string{"access": "still-rejected"})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, tokens)
	_, err := client.Get(context.Background(), "clientes/mi_perfil/", nil)
	if !errors.Is(err, ErrAuthExpired) {
		t.Fatalf("err = %v, want ErrAuthExpired", err)
	}
	if !tokens.wasCleared() {
		t.Error("credentials were not cleared after second 401")
	}
}

func TestAPIErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"error key", `{"error":"No hay lugares disponibles."}`, "No hay lugares disponibles."},
		{"detail key", `{"detail":"No encontrado."}`, "No encontrado."},
		{"mensaje key", `{"mensaje":"Sesión llena."}`, "Sesión llena."},
		{"nested object", `{"error":{"message":"Cupo agotado."}}`, "Cupo agotado."},
		{"unparseable", `<html>boom</html>`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, 2*time.Second, &fakeTokens{access: "tok"})
			_, err := client.Get(context.Background(), "x/", nil)

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("err = %v, want *APIError", err)
			}
			if apiErr.StatusCode != http.StatusConflict {
				t.Errorf("status = %d, want 409", apiErr.StatusCode)
			}
			if apiErr.Message != tc.want {
				t.Errorf("message = %q, want %q", apiErr.Message, tc.want)
			}
		})
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, time.Second, &fakeTokens{access: "tok"})
	_, err := client.Get(context.Background(), "x/", nil)
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("err = %v, want ErrNetwork", err)
	}
}

func TestErrorMessageFallback(t *testing.T) {
	if got := ErrorMessage(errors.New("plain"), "fallback"); got != "fallback" {
		t.Errorf("ErrorMessage(plain) = %q, want fallback", got)
	}
	err := &APIError{StatusCode: 409, Message: "Ya tienes una reserva."}
	if got := ErrorMessage(err, "fallback"); got != "Ya tienes una reserva." {
		t.Errorf("ErrorMessage(api) = %q", got)
	}
	if got := ErrorMessage(&APIError{StatusCode: 500}, "fallback"); got != "fallback" {
		t.Errorf("ErrorMessage(empty api message) = %q, want fallback", got)
	}
}
