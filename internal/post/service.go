package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Service exposes post operations. Writes are always attributed to an
// authenticated author; the caller supplies the identity resolved from the
// request token.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService builds a post service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// Input carries the writable post fields.
type Input struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// AuthorRef identifies the requester, taken from the verified token claim.
type AuthorRef struct {
	ID       string
	Username string
}

// Create stores a new post owned by the author.
func (s *Service) Create(ctx context.Context, author AuthorRef, input Input) (View, error) {
	if err := s.validate.Struct(input); err != nil {
		return View{}, fmt.Errorf("invalid post: %w", err)
	}

	now := time.Now().UTC()
	post := Post{
		ID:             uuid.New().String(),
		UserID:         author.ID,
		AuthorUsername: author.Username,
		Title:          input.Title,
		Content:        input.Content,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return View{}, err
	}
	return post.Serialize(), nil
}

// ListByAuthor returns the author's own posts.
func (s *Service) ListByAuthor(ctx context.Context, authorID string) ([]View, error) {
	posts, err := s.repo.ListByUser(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return serializeAll(posts), nil
}

// ListAll returns every post regardless of owner.
func (s *Service) ListAll(ctx context.Context) ([]View, error) {
	posts, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return serializeAll(posts), nil
}

// Get returns a single post by id.
func (s *Service) Get(ctx context.Context, id string) (View, error) {
	post, err := s.repo.Get(ctx, id)
	if err != nil {
		return View{}, err
	}
	return post.Serialize(), nil
}

// Update rewrites a post owned by the author. Updating someone else's post
// reports ErrNotFound rather than revealing its existence.
func (s *Service) Update(ctx context.Context, author AuthorRef, id string, input Input) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("invalid post: %w", err)
	}
	return s.repo.Update(ctx, id, author.ID, input.Title, input.Content, time.Now().UTC())
}

// Delete removes a post owned by the author.
func (s *Service) Delete(ctx context.Context, author AuthorRef, id string) error {
	return s.repo.Delete(ctx, id, author.ID)
}

// IsValidationError reports whether err came from payload validation.
func IsValidationError(err error) bool {
	var verr validator.ValidationErrors
	return errors.As(err, &verr)
}
