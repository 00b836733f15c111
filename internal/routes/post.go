package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dream-recall/dream_recall/internal/post"
)

// RegisterPostRoutes wires post CRUD. Everything except the public /all
// listing requires a verified bearer token. /all must be registered before
// /:postid so it is not captured by the parameter route.
func RegisterPostRoutes(r fiber.Router, h *post.Handler, bearer fiber.Handler) {
	group := r.Group("/post")
	group.Get("/all", h.All)
	group.Post("/", bearer, h.Create)
	group.Get("/", bearer, h.List)
	group.Get("/:postid", bearer, h.Get)
	group.Put("/:postid", bearer, h.Update)
	group.Delete("/:postid", bearer, h.Delete)
}
