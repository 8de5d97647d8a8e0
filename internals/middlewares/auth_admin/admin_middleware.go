package auth_admin

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"virgimotor_backend/internals/configs"
	"virgimotor_backend/internals/features/users/auth/service"
	helper "virgimotor_backend/internals/helpers"
)

const sessionCookieName = "admin_session"

// AdminOnly memverifikasi JWT sesi (header Bearer atau cookie) dan role
// super_admin, SEBELUM request menyentuh database.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Missing session")
		}

		secret := configs.JWTSecret
		if secret == "" {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims, err := service.ParseSessionToken(secret, tokenString)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or expired session")
		}
		if !strings.EqualFold(claims.Role, "super_admin") {
			return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
		}

		c.Locals("user_id", claims.Subject)
		c.Locals("user_name", claims.UserName)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return c.Cookies(sessionCookieName)
}
