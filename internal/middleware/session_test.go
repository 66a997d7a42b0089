package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/aeroclub-norte/turnero-api/internal/auth"
	"github.com/aeroclub-norte/turnero-api/internal/models"
)

func sessionTestApp(issuer *auth.TokenIssuer, revocations *auth.Revocations) *fiber.App {
	app := fiber.New()
	app.Use(SessionProtected(issuer, revocations))
	app.Get("/protected", func(c *fiber.Ctx) error {
		identity, ok := SessionFromContext(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(identity)
	})
	return app
}

func TestSessionProtectedAcceptsValidToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	app := sessionTestApp(issuer, auth.NewRevocations())

	token, _, err := issuer.Issue(models.SessionIdentity{Username: "Ana Gomez", CohortID: 3})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSessionProtectedRejectsMissingHeader(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	app := sessionTestApp(issuer, auth.NewRevocations())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSessionProtectedRejectsMalformedToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	app := sessionTestApp(issuer, auth.NewRevocations())

	for _, header := range []string{"Token abc", "Bearer ", "Bearer garbage"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}
}

func TestSessionProtectedRejectsRevokedToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	revocations := auth.NewRevocations()
	app := sessionTestApp(issuer, revocations)

	token, tokenID, err := issuer.Issue(models.SessionIdentity{Username: "Ana Gomez", CohortID: 3})
	require.NoError(t, err)
	revocations.Revoke(tokenID)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSessionProtectedStoresRoleAndTokenID(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	app := fiber.New()
	app.Use(SessionProtected(issuer, auth.NewRevocations()))
	app.Get("/check", func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role != models.RoleAdmin || TokenIDFromContext(c) == "" {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	token, _, err := issuer.Issue(models.SessionIdentity{Username: "admin", IsAdmin: true})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
