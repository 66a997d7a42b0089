package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aeroclub-norte/turnero-api/internal/utils"
)

// RequireRole ensures the authenticated session carries one of the allowed
// roles. An admin visiting student routes gets a 403, and vice versa; the
// client is expected to send the user back to their own home view.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		normalized := strings.ToLower(strings.TrimSpace(role))
		if normalized != "" {
			allowed[normalized] = struct{}{}
		}
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(localsRole).(string)
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(role))]; !ok {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}
