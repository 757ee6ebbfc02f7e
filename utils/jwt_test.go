package utils

import (
	"testing"
	"time"

	"triptailor/config"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerifyToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	claims := map[string]any{"email": "a@x.com", "name": "A"}
	token, err := IssueToken(claims)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	decoded, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if decoded["email"] != "a@x.com" {
		t.Errorf("expected email claim to round-trip, got %v", decoded["email"])
	}
	if decoded["name"] != "A" {
		t.Errorf("expected name claim to round-trip, got %v", decoded["name"])
	}

	exp, err := decoded.GetExpirationTime()
	if err != nil {
		t.Fatalf("missing exp claim: %v", err)
	}
	ttl := time.Until(exp.Time)
	if ttl > TokenTTL || ttl < TokenTTL-time.Minute {
		t.Errorf("expected ~12h expiry, got %v", ttl)
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "secret-one"
	token, err := IssueToken(map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	config.AppConfig.JWTSecret = "secret-two"
	if _, err := VerifyToken(token); err == nil {
		t.Fatal("expected verification to fail with a different secret")
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"iat":   time.Now().Add(-13 * time.Hour).Unix(),
		"exp":   time.Now().Add(-1 * time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign expired token: %v", err)
	}

	if _, err := VerifyToken(tokenString); err == nil {
		t.Fatal("expected verification to fail for an expired token")
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	if _, err := VerifyToken("not.a.token"); err == nil {
		t.Fatal("expected verification to fail for a malformed token")
	}
}
