package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the login and refresh endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds an auth HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AuthToken string `json:"authToken"`
	User      any    `json:"user"`
}

// Login validates the credentials in the request body and returns a token
// alongside the serialized user.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password are required")
	}

	view, token, err := h.svc.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return fiber.NewError(http.StatusUnauthorized, ErrInvalidCredentials.Error())
		}
		return err
	}

	return c.Status(http.StatusOK).JSON(tokenResponse{AuthToken: token, User: view})
}

// Refresh issues a new token for the bearer of a still-valid one. The old
// token is not revoked; it lapses on its own expiry.
func (h *Handler) Refresh(c *fiber.Ctx) error {
	claims, ok := ClaimsFromCtx(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, ErrTokenInvalid.Error())
	}

	token, err := h.svc.Refresh(claims)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(tokenResponse{AuthToken: token, User: claims.User})
}
