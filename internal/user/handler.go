package user

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes user HTTP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds a user HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register creates a new account and returns the serialized user. The
// response never includes the password hash.
func (h *Handler) Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	view, err := h.svc.Register(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateUser):
			return fiber.NewError(http.StatusBadRequest, "A user with that username and/or email already exists.")
		case IsValidationError(err):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.Status(http.StatusCreated).JSON(view)
}

// List returns every registered user.
func (h *Handler) List(c *fiber.Ctx) error {
	views, err := h.svc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(views)
}

// Get returns a single user by id.
func (h *Handler) Get(c *fiber.Ctx) error {
	view, err := h.svc.Get(c.UserContext(), c.Params("userid"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, ErrNotFound.Error())
		}
		return err
	}
	return c.Status(http.StatusOK).JSON(view)
}
