package post

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dream-recall/dream_recall/internal/auth"
)

// Handler exposes post HTTP endpoints. All except All assume the bearer
// middleware already attached verified claims to the request.
type Handler struct {
	svc *Service
}

// NewHandler builds a post HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create stores a new post for the authenticated user.
func (h *Handler) Create(c *fiber.Ctx) error {
	author, err := requireAuthor(c)
	if err != nil {
		return err
	}

	var input Input
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	view, err := h.svc.Create(c.UserContext(), author, input)
	if err != nil {
		if IsValidationError(err) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return err
	}
	return c.Status(http.StatusCreated).JSON(view)
}

// List returns the authenticated user's posts.
func (h *Handler) List(c *fiber.Ctx) error {
	author, err := requireAuthor(c)
	if err != nil {
		return err
	}
	views, err := h.svc.ListByAuthor(c.UserContext(), author.ID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(views)
}

// All returns every user's posts. This endpoint is public.
func (h *Handler) All(c *fiber.Ctx) error {
	views, err := h.svc.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(views)
}

// Get returns a single post by id.
func (h *Handler) Get(c *fiber.Ctx) error {
	view, err := h.svc.Get(c.UserContext(), c.Params("postid"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, ErrNotFound.Error())
		}
		return err
	}
	return c.Status(http.StatusOK).JSON(view)
}

// Update rewrites the authenticated user's post and responds 204.
func (h *Handler) Update(c *fiber.Ctx) error {
	author, err := requireAuthor(c)
	if err != nil {
		return err
	}

	var input Input
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.Update(c.UserContext(), author, c.Params("postid"), input); err != nil {
		switch {
		case IsValidationError(err):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNotFound):
			return fiber.NewError(http.StatusNotFound, ErrNotFound.Error())
		}
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete removes the authenticated user's post and responds 204.
func (h *Handler) Delete(c *fiber.Ctx) error {
	author, err := requireAuthor(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.UserContext(), author, c.Params("postid")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, ErrNotFound.Error())
		}
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func requireAuthor(c *fiber.Ctx) (AuthorRef, error) {
	claims, ok := auth.ClaimsFromCtx(c)
	if !ok {
		return AuthorRef{}, fiber.NewError(http.StatusUnauthorized, "missing bearer token")
	}
	return AuthorRef{ID: claims.User.ID, Username: claims.User.Username}, nil
}
