package token

import (
	"errors"
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestIssueAndParse(t *testing.T) {
	raw, err := Issue(secret, 42, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	userID, err := Parse(secret, raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if userID != 42 {
		t.Errorf("Expected subject 42, got %d", userID)
	}
}

func TestParse_Expired(t *testing.T) {
	raw, err := Issue(secret, 42, -1*time.Second)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, err = Parse(secret, raw)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Expected ErrExpiredToken, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	raw, err := Issue(secret, 42, time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, err = Parse([]byte("other-secret"), raw)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse(secret, "not-a-token")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}
