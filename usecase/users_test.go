package usecase_test

import (
	"context"
	"errors"
	"testing"

	"main/services"
	"main/test/testutils"
	"main/usecase"
)

func newUserService() *usecase.UserService {
	return &usecase.UserService{UsersRepo: testutils.NewFakeUsersRepo()}
}

func TestRegister(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice@Example.com", "password1", "Alice", "Smith")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.UserID == "" {
		t.Error("Expected a generated user ID")
	}
	if user.Email != "alice@example.com" {
		t.Errorf("Expected normalized email, got %q", user.Email)
	}
	if user.Password == "password1" {
		t.Fatal("Password stored in plaintext")
	}
	match, err := services.VerifyPassword(user.Password, "password1")
	if err != nil || !match {
		t.Error("Stored hash does not verify against the original password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice@example.com", "password1", "", ""); err != nil {
		t.Fatalf("First register failed: %v", err)
	}

	// Same address in a different case is still a duplicate
	_, err := svc.Register(ctx, "ALICE@example.com", "password2", "", "")
	if !errors.Is(err, usecase.ErrEmailTaken) {
		t.Fatalf("Expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	registered, _ := svc.Register(ctx, "alice@example.com", "password1", "", "")

	user, err := svc.Authenticate(ctx, "Alice@Example.com", "password1")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.UserID != registered.UserID {
		t.Errorf("Expected user %s, got %s", registered.UserID, user.UserID)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	svc.Register(ctx, "alice@example.com", "password1", "", "")

	// Wrong password and unknown email produce the same error
	if _, err := svc.Authenticate(ctx, "alice@example.com", "wrongpass1"); !errors.Is(err, usecase.ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@example.com", "password1"); !errors.Is(err, usecase.ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestGetProfile(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	registered, _ := svc.Register(ctx, "alice@example.com", "password1", "Alice", "Smith")

	user, err := svc.GetProfile(ctx, registered.UserID)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if user.FirstName != "Alice" || user.LastName != "Smith" {
		t.Error("Profile fields missing")
	}

	if _, err := svc.GetProfile(ctx, "no-such-user"); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}
