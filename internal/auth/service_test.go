package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dream-recall/dream_recall/internal/user"
)

func seedUser(t *testing.T, repo user.Repository, username, password string) user.User {
	t.Helper()
	hash, err := user.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := user.User{
		ID:           uuid.New().String(),
		Name:         "A",
		Email:        username + "@x.com",
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestLoginSuccess(t *testing.T) {
	repo := user.NewMemoryRepository()
	codec := NewTokenCodec("fixture-secret", time.Hour)
	svc := NewService(repo, codec)

	seeded := seedUser(t, repo, "alice01", "password1")

	view, token, err := svc.Login(context.Background(), "alice01", "password1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if view.Username != seeded.Username || view.ID != seeded.ID {
		t.Fatalf("unexpected view: %+v", view)
	}

	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.User != view {
		t.Fatalf("claims/view mismatch: %+v vs %+v", claims.User, view)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := user.NewMemoryRepository()
	svc := NewService(repo, NewTokenCodec("fixture-secret", time.Hour))

	seedUser(t, repo, "alice01", "password1")

	_, _, wrongPass := svc.Login(context.Background(), "alice01", "wrongpassword")
	_, _, noUser := svc.Login(context.Background(), "nobody", "password1")

	if !errors.Is(wrongPass, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(noUser, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Fatalf("error messages differ: %q vs %q", wrongPass.Error(), noUser.Error())
	}
}

func TestRefreshIssuesIndependentToken(t *testing.T) {
	repo := user.NewMemoryRepository()
	codec := NewTokenCodec("fixture-secret", time.Hour)
	svc := NewService(repo, codec)

	seedUser(t, repo, "alice01", "password1")

	_, token, err := svc.Login(context.Background(), "alice01", "password1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	refreshed, err := svc.Refresh(claims)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	// Both tokens must verify on their own; refresh does not revoke the old one.
	if _, err := codec.Verify(token); err != nil {
		t.Fatalf("original token should remain valid: %v", err)
	}
	newClaims, err := codec.Verify(refreshed)
	if err != nil {
		t.Fatalf("refreshed token invalid: %v", err)
	}
	if newClaims.User != claims.User {
		t.Fatalf("refresh changed the embedded user: %+v", newClaims.User)
	}
}
