package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{"demo@gym.mx", "ana.garcia+test@example.com", "UPPER@CASE.IO"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	invalid := []string{"", "no-at.example.com", "a@b", "spaces in@mail.com"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{"5512345678", "+525512345678", "55 1234 5678"}
	for _, phone := range valid {
		if !IsValidPhone(phone) {
			t.Errorf("IsValidPhone(%q) = false, want true", phone)
		}
	}
	invalid := []string{"", "123", "phone", "123456789012345678"}
	for _, phone := range invalid {
		if IsValidPhone(phone) {
			t.Errorf("IsValidPhone(%q) = true, want false", phone)
		}
	}
}

func TestStrToInt64(t *testing.T) {
	if n, err := StrToInt64("42"); err != nil || n != 42 {
		t.Errorf("StrToInt64(42) = %d, %v", n, err)
	}
	if _, err := StrToInt64("not-a-number"); err == nil {
		t.Error("want error for non-numeric input")
	}
	if Int64ToStr(7) != "7" {
		t.Error("Int64ToStr(7) != 7")
	}
}

func TestNewNullString(t *testing.T) {
	if NewNullString("") != nil {
		t.Error("empty string should map to nil")
	}
	if p := NewNullString("x"); p == nil || *p != "x" {
		t.Errorf("NewNullString(x) = %v", p)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateAccessToken(secret, 7, "demo@gym.mx", "cliente")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.ClientID != 7 || claims.Email != "demo@gym.mx" || claims.Role != "cliente" {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := ValidateToken([]byte("other-secret"), token); err == nil {
		t.Error("token validated with the wrong secret")
	}
}
