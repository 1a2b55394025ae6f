package service

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueAndValidate(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := svc.Validate(token); err != nil {
		t.Fatalf("validate fresh token: %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.IssueWithTTL("admin", -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := svc.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", token)
	}
	// Swap the payload for a different one; signature no longer matches.
	payload := []byte(parts[1])
	payload[0] ^= 0x01
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if err := svc.Validate(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := NewTokenService("secret-a").Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := NewTokenService("secret-b").Validate(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
