package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Service manages the user lifecycle: registration and read-only lookups.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService creates a new user service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// RegisterInput carries the registration payload. The rules mirror the
// reference schema: alphanumeric username up to 30 chars, password 8-30 chars.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,alphanum,max=30"`
	Password string `json:"password" validate:"required,min=8,max=30"`
}

// Register validates the input, rejects duplicate usernames/emails and stores
// the new user with a hashed password. The plaintext is discarded immediately
// after hashing.
func (s *Service) Register(ctx context.Context, input RegisterInput) (View, error) {
	if err := s.validate.Struct(input); err != nil {
		return View{}, fmt.Errorf("invalid registration: %w", err)
	}

	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return View{}, err
	}
	if exists {
		return View{}, ErrDuplicateUser
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return View{}, err
	}

	user := User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return View{}, err
	}

	return user.Serialize(), nil
}

// Get returns the serialized user for the given id.
func (s *Service) Get(ctx context.Context, id string) (View, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return View{}, err
	}
	return user.Serialize(), nil
}

// List returns every user in serialized form.
func (s *Service) List(ctx context.Context) ([]View, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]View, 0, len(users))
	for _, user := range users {
		views = append(views, user.Serialize())
	}
	return views, nil
}

// IsValidationError reports whether err came from payload validation.
func IsValidationError(err error) bool {
	var verr validator.ValidationErrors
	return errors.As(err, &verr)
}
