package users

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Ada@Example.com", "Ada Lovelace", "correct horse")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token on register")
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "correct horse" || user.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}

	got, token, err := svc.Login(ctx, "ada@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != user.ID || token == "" {
		t.Fatalf("login returned wrong user or empty token")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	if _, _, err := svc.Register(ctx, "ada@example.com", "Ada", "correct horse"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login(ctx, "ada@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	// Unknown email must look exactly like a wrong password.
	if _, _, err := svc.Login(ctx, "nobody@example.com", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	if _, _, err := svc.Register(ctx, "ada@example.com", "Ada", "correct horse"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, _, err := svc.Register(ctx, "ADA@example.com", "Imposter", "another pass"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, _, err := svc.Register(context.Background(), "ada@example.com", "Ada", "short"); err == nil {
		t.Fatal("expected short password to be rejected")
	}
}

func TestUpsertFromGoogleIsStableAcrossSignIns(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	first, err := svc.UpsertFromGoogle(ctx, "sub-123", "ada@example.com", "Ada", "")
	if err != nil {
		t.Fatalf("UpsertFromGoogle: %v", err)
	}
	second, err := svc.UpsertFromGoogle(ctx, "sub-123", "ada@example.com", "Ada L.", "http://pic")
	if err != nil {
		t.Fatalf("UpsertFromGoogle: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("ID must be stable across sign-ins: %q vs %q", first.ID, second.ID)
	}

	stored, err := svc.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Name != "Ada L." || stored.Picture != "http://pic" {
		t.Fatalf("profile not refreshed: %+v", stored)
	}
}
