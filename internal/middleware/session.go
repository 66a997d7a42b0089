package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aeroclub-norte/turnero-api/internal/auth"
	"github.com/aeroclub-norte/turnero-api/internal/models"
	"github.com/aeroclub-norte/turnero-api/internal/utils"
)

// Locals keys populated by the session middleware.
const (
	localsSession = "session"
	localsRole    = "user_role"
	localsTokenID = "token_id"
)

// SessionProtected validates the bearer token, rejects revoked sessions and
// stores the resolved identity on the request.
func SessionProtected(issuer *auth.TokenIssuer, revocations *auth.Revocations) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(strings.ToLower(authorization), strings.ToLower(bearer)) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		tokenString := strings.TrimSpace(authorization[len(bearer):])
		if tokenString == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		identity, tokenID, err := issuer.Parse(tokenString)
		if err != nil {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}
		if revocations.IsRevoked(tokenID) {
			return utils.SendError(c, fiber.StatusUnauthorized, "session ended")
		}

		c.Locals(localsSession, identity)
		c.Locals(localsRole, identity.Role())
		c.Locals(localsTokenID, tokenID)

		return c.Next()
	}
}

// SessionFromContext returns the identity stored by SessionProtected.
func SessionFromContext(c *fiber.Ctx) (models.SessionIdentity, bool) {
	identity, ok := c.Locals(localsSession).(models.SessionIdentity)
	return identity, ok
}

// TokenIDFromContext returns the token id of the active session.
func TokenIDFromContext(c *fiber.Ctx) string {
	if id, ok := c.Locals(localsTokenID).(string); ok {
		return id
	}
	return ""
}
