package auth

import "github.com/gofiber/fiber/v2"

const claimsLocalKey = "auth_claims"

// StoreClaims attaches verified claims to the in-flight request. The claims
// live only for the duration of this request.
func StoreClaims(c *fiber.Ctx, claims Claims) {
	c.Locals(claimsLocalKey, claims)
}

// ClaimsFromCtx returns the claims attached by the bearer middleware, if any.
func ClaimsFromCtx(c *fiber.Ctx) (Claims, bool) {
	claims, ok := c.Locals(claimsLocalKey).(Claims)
	return claims, ok
}
