package middleware

import (
	"strings"

	"go-pos-backoffice/internal/repository"
	"go-pos-backoffice/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireTenant is the single guarded entry point for every protected
// operation: it validates the bearer token, confirms the profile still
// exists, and stamps the tenant id into the request context. Handlers read
// the tenant id from here and nowhere else.
func RequireTenant(profileRepo repository.ProfileRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		profile, err := profileRepo.FindByID(claims.TenantID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Profile not found"})
		}

		c.Locals("tenant_id", profile.ID)
		c.Locals("username", profile.Username)

		return c.Next()
	}
}
