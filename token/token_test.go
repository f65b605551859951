package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService([]byte("test_secret"))

	tok, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if tok == "" {
		t.Fatal("Issue() returned empty token")
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("claims.Email = %q, want %q", claims.Email, "a@x.com")
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) < 364*24*time.Hour {
		t.Error("token expiry should be on the order of a year")
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	svc := NewService([]byte("test_secret"))
	good, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"tampered", good + "x"},
	}
	for _, tt := range tests {
		if _, err := svc.Verify(tt.token); err == nil {
			t.Errorf("Verify(%s) should fail", tt.name)
		}
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tok, err := NewService([]byte("secret_one")).Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := NewService([]byte("secret_two")).Verify(tok); err == nil {
		t.Error("token signed with another secret should not verify")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	secret := []byte("test_secret")
	claims := Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := NewService(secret).Verify(expired); err == nil {
		t.Error("expired token should not verify")
	}
}
