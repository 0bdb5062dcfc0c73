package auth

import (
	"errors"
	"testing"
)

func TestSignAndVerifySession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignSession("user-1", "ada@example.com", "Ada")
	if err != nil {
		t.Fatalf("SignSession: %v", err)
	}

	claims, err := VerifySession(token)
	if err != nil {
		t.Fatalf("VerifySession: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("subject = %q", claims.Subject)
	}
	if claims.Email != "ada@example.com" || claims.Name != "Ada" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestVerifySessionRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignSession("user-1", "", "")
	if err != nil {
		t.Fatalf("SignSession: %v", err)
	}

	if _, err := VerifySession(token + "x"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifySessionRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := SignSession("user-1", "", "")
	if err != nil {
		t.Fatalf("SignSession: %v", err)
	}

	t.Setenv("JWT_SECRET", "second-secret")
	if _, err := VerifySession(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSignSessionRequiresSecretAndSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := SignSession("user-1", "", ""); err == nil {
		t.Fatal("expected error without secret")
	}

	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := SignSession("  ", "", ""); err == nil {
		t.Fatal("expected error for empty user id")
	}
}
