package auth

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Storage keys. The store is a small device-local key-value table, the
// equivalent of the mobile app's async storage.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyTheme        = "theme"
)

// Store persists credentials and small preferences in a local sqlite file.
// It implements api.TokenSource.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the local store at path. Use ":memory:"
// for throwaway stores in tests.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize local store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// AccessToken returns the stored access token, or "" when signed out.
func (s *Store) AccessToken() (string, error) {
	return s.get(keyAccessToken)
}

// RefreshToken returns the stored refresh token, or "" when signed out.
func (s *Store) RefreshToken() (string, error) {
	return s.get(keyRefreshToken)
}

// SetAccessToken replaces the access token, keeping the refresh token.
func (s *Store) SetAccessToken(token string) error {
	return s.set(keyAccessToken, token)
}

// SetTokens stores a fresh access/refresh pair after login.
func (s *Store) SetTokens(access, refresh string) error {
	if err := s.set(keyAccessToken, access); err != nil {
		return err
	}
	return s.set(keyRefreshToken, refresh)
}

// Clear removes both tokens. Preferences survive a sign-out.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key IN (?, ?)`, keyAccessToken, keyRefreshToken)
	return err
}

// ThemePreference returns the stored theme name ("light"/"dark"), defaulting
// to light.
func (s *Store) ThemePreference() (string, error) {
	theme, err := s.get(keyTheme)
	if err != nil {
		return "", err
	}
	if theme == "" {
		theme = "light"
	}
	return theme, nil
}

// SetThemePreference stores the theme name.
func (s *Store) SetThemePreference(theme string) error {
	return s.set(keyTheme, theme)
}
