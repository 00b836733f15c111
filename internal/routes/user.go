package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dream-recall/dream_recall/internal/user"
)

// RegisterUserRoutes wires registration and user lookups. The reads are
// deliberately unauthenticated, matching the reference system.
func RegisterUserRoutes(r fiber.Router, h *user.Handler) {
	group := r.Group("/user")
	group.Post("/", h.Register)
	group.Get("/", h.List)
	group.Get("/:userid", h.Get)
}
