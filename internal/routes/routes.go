package routes

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/dream-recall/dream_recall/internal/auth"
	"github.com/dream-recall/dream_recall/internal/config"
	"github.com/dream-recall/dream_recall/internal/middleware"
	"github.com/dream-recall/dream_recall/internal/post"
	"github.com/dream-recall/dream_recall/internal/user"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{AllowOrigins: d.Cfg.ClientOrigin}))
	app.Use(middleware.RequestLog(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// Repositories fall back to memory in dev when no database is configured.
	var userRepo user.Repository
	if d.DB != nil {
		userRepo = user.NewPostgresRepository(d.DB)
	} else {
		userRepo = user.NewMemoryRepository()
	}
	var postRepo post.Repository
	if d.DB != nil {
		postRepo = post.NewPostgresRepository(d.DB)
	} else {
		postRepo = post.NewMemoryRepository()
	}

	// Services and handlers
	codec := auth.NewTokenCodec(d.Cfg.JWTSecret, d.Cfg.JWTExpiry)
	userSvc := user.NewService(userRepo)
	postSvc := post.NewService(postRepo)
	authSvc := auth.NewService(userRepo, codec)

	authHandler := auth.NewHandler(authSvc)
	userHandler := user.NewHandler(userSvc)
	postHandler := post.NewHandler(postSvc)

	bearer := middleware.BearerAuth(codec)
	rateLimiter := middleware.LoginRateLimit(d.Cache, d.Cfg.LoginRateLimit)

	api := app.Group("/api")

	RegisterAuthRoutes(api, authHandler, rateLimiter, bearer)
	RegisterUserRoutes(api, userHandler)
	RegisterPostRoutes(api, postHandler, bearer)

	// Unmatched routes end here.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Not Found."})
	})

	return nil
}
