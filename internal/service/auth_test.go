package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/olivertwistor/financial-assets-manager/internal/domain"
	"github.com/olivertwistor/financial-assets-manager/internal/repository/sqlite"
	"github.com/olivertwistor/financial-assets-manager/internal/service"
)

const (
	testJWTSecret  = "0123456789abcdef0123456789abcdef"
	testBcryptCost = 4 // minimum cost keeps tests fast
)

func newTestAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	db := newServiceTestDB(t)
	return service.NewAuthService(sqlite.NewUserRepository(db), testJWTSecret, testBcryptCost)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "olivia@example.com", "Olivia", "correct horse")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.PasswordHash == "correct horse" {
		t.Fatal("expected password to be hashed")
	}

	token, err := auth.Login(ctx, "olivia@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	userID, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("expected user id %d from token, got %d", user.ID, userID)
	}
}

func TestAuthService_RegisterValidation(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	cases := []struct {
		name                         string
		email, displayName, password string
	}{
		{"missing email", "", "Olivia", "correct horse"},
		{"missing display name", "olivia@example.com", "", "correct horse"},
		{"missing password", "olivia@example.com", "Olivia", ""},
		{"short password", "olivia@example.com", "Olivia", "short"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Register(ctx, tc.email, tc.displayName, tc.password)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "olivia@example.com", "Olivia", "correct horse"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := auth.Login(ctx, "olivia@example.com", "wrong horse")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	auth := newTestAuthService(t)

	_, err := auth.Login(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_ValidateGarbageToken(t *testing.T) {
	auth := newTestAuthService(t)

	_, err := auth.ValidateToken("not-a-token")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
