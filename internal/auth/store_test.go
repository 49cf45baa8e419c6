package auth

import "testing"

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(":memory:")
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreTokenRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetTokens("acc-1", "ref-1"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}
	access, err := store.AccessToken()
	if err != nil || access != "acc-1" {
		t.Errorf("AccessToken = %q, %v", access, err)
	}
	refresh, err := store.RefreshToken()
	if err != nil || refresh != "ref-1" {
		t.Errorf("RefreshToken = %q, %v", refresh, err)
	}

	// SetAccessToken replaces only the access token.
	if err := store.SetAccessToken("acc-2"); err != nil {
		t.Fatalf("SetAccessToken: %v", err)
	}
	access, _ = store.AccessToken()
	refresh, _ = store.RefreshToken()
	if access != "acc-2" || refresh != "ref-1" {
		t.Errorf("after rotate: access %q refresh %q", access, refresh)
	}
}

func TestStoreEmptyWhenSignedOut(t *testing.T) {
	store := openTestStore(t)

	access, err := store.AccessToken()
	if err != nil || access != "" {
		t.Errorf("AccessToken on fresh store = %q, %v", access, err)
	}
}

func TestStoreClearKeepsPreferences(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetTokens("acc", "ref"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}
	if err := store.SetThemePreference("dark"); err != nil {
		t.Fatalf("SetThemePreference: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	access, _ := store.AccessToken()
	refresh, _ := store.RefreshToken()
	if access != "" || refresh != "" {
		t.Errorf("tokens after clear: %q %q", access, refresh)
	}
	theme, err := store.ThemePreference()
	if err != nil || theme != "dark" {
		t.Errorf("theme after clear = %q, %v", theme, err)
	}
}

func TestStoreThemeDefaultsToLight(t *testing.T) {
	store := openTestStore(t)
	theme, err := store.ThemePreference()
	if err != nil || theme != "light" {
		t.Errorf("default theme = %q, %v", theme, err)
	}
}
