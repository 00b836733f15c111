package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dream-recall/dream_recall/internal/auth"
)

// BearerAuth returns a middleware that verifies the Authorization bearer
// token and attaches its claims to the request. The user record is not
// re-read from the store: a correctly signed, unexpired token is trusted as
// is, so revoked or deleted users keep access until their token lapses.
func BearerAuth(codec *auth.TokenCodec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		tokenStr := strings.TrimSpace(authz[len("Bearer "):])

		claims, err := codec.Verify(tokenStr)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				return fiber.NewError(http.StatusUnauthorized, auth.ErrTokenExpired.Error())
			}
			return fiber.NewError(http.StatusUnauthorized, auth.ErrTokenInvalid.Error())
		}

		auth.StoreClaims(c, claims)
		return c.Next()
	}
}
