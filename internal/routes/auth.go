package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dream-recall/dream_recall/internal/auth"
)

// RegisterAuthRoutes wires the login and refresh endpoints. Refresh sits
// behind the bearer gate: a still-valid token buys a fresh one.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter, bearer fiber.Handler) {
	group := r.Group("/auth")
	if rateLimiter != nil {
		group.Post("/login", rateLimiter, h.Login)
	} else {
		group.Post("/login", h.Login)
	}
	group.Post("/refresh", bearer, h.Refresh)
}
