package auth

import (
	"context"

	"github.com/dream-recall/dream_recall/internal/user"
)

// Service verifies credentials and issues bearer tokens.
type Service struct {
	users user.Repository
	codec *TokenCodec
}

// NewService builds the auth service from the user store and a token codec.
func NewService(users user.Repository, codec *TokenCodec) *Service {
	return &Service{users: users, codec: codec}
}

// Login resolves a username/password pair to the serialized user plus a fresh
// token. Unknown usernames and wrong passwords both fail with
// ErrInvalidCredentials; the caller must not distinguish the two.
func (s *Service) Login(ctx context.Context, username, password string) (user.View, string, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return user.View{}, "", ErrInvalidCredentials
	}

	if !user.CheckPassword(password, u.PasswordHash) {
		return user.View{}, "", ErrInvalidCredentials
	}

	view := u.Serialize()
	token, err := s.codec.Issue(view)
	if err != nil {
		return user.View{}, "", err
	}
	return view, token, nil
}

// Refresh re-signs a token from an already verified claim, sliding the expiry
// window forward. The user record is deliberately not re-read: trust rests
// entirely on the signature until the presented token expires.
func (s *Service) Refresh(claims Claims) (string, error) {
	return s.codec.Issue(claims.User)
}
