package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/aeroclub-norte/turnero-api/internal/auth"
	"github.com/aeroclub-norte/turnero-api/internal/config"
	"github.com/aeroclub-norte/turnero-api/internal/handler"
	"github.com/aeroclub-norte/turnero-api/internal/middleware"
	"github.com/aeroclub-norte/turnero-api/internal/models"
	"github.com/aeroclub-norte/turnero-api/internal/router"
	"github.com/aeroclub-norte/turnero-api/internal/service"
	"github.com/aeroclub-norte/turnero-api/internal/store"
)

// newBookingApp wires the full HTTP surface against a throwaway Redis, the
// same way main does it.
func newBookingApp(t *testing.T) *fiber.App {
	t.Helper()

	server, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	kv := store.NewRedisKV(client)

	logger := zerolog.New(io.Discard)
	cohortStore := store.NewCohortStore(kv, logger)
	studentStore := store.NewStudentStore(kv, logger)
	slotStore := store.NewSlotStore(kv, logger)

	validate := validator.New(validator.WithRequiredStructEnabled())
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	revocations := auth.NewRevocations()

	cfg := config.Config{AppName: "Turnero API", AppEnv: "test"}

	authHandler := handler.NewAuthHandler(
		service.NewAuthService(studentStore, issuer, revocations, "admin", "admin", logger), validate, logger)
	cohortHandler := handler.NewCohortHandler(service.NewCohortService(cohortStore, validate, logger), logger)
	studentHandler := handler.NewStudentHandler(service.NewStudentService(studentStore, cohortStore, validate, logger), logger)
	slotHandler := handler.NewSlotHandler(service.NewSlotService(slotStore, validate, logger), logger)

	app := fiber.New()
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:       authHandler,
		CohortHandler:     cohortHandler,
		StudentHandler:    studentHandler,
		SlotHandler:       slotHandler,
		SessionMiddleware: middleware.SessionProtected(issuer, revocations),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, payload interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response, data interface{}) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	envelope := struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	if data != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, data))
	}
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": username, "password": password,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		Token string `json:"token"`
	}
	decodeEnvelope(t, resp, &data)
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestHealthEndpointIsPublic(t *testing.T) {
	app := newBookingApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/health", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminRoutesRequireASession(t *testing.T) {
	app := newBookingApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/admin/cohorts", "", nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRolesAreMutuallyExclusive(t *testing.T) {
	app := newBookingApp(t)
	adminToken := login(t, app, "admin", "admin")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/admin/students", adminToken, fiber.Map{
		"nombre": "Ana", "apellido": "Gomez", "dni": "12345", "promocionId": 1, "clase": "B",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	studentToken := login(t, app, "agomez", "12345")

	resp = doJSON(t, app, http.MethodGet, "/api/v1/student/slots", adminToken, nil)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/slots", studentToken, nil)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestBookingLifecycleEndToEnd(t *testing.T) {
	app := newBookingApp(t)
	adminToken := login(t, app, "admin", "admin")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/admin/cohorts", adminToken, fiber.Map{
		"name": "Promo 2026", "color": "#4ade80",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var cohort models.Cohort
	decodeEnvelope(t, resp, &cohort)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/admin/students", adminToken, fiber.Map{
		"nombre": "Ana", "apellido": "Gomez", "dni": "12345", "promocionId": cohort.ID, "clase": "B",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/admin/slots", adminToken, fiber.Map{
		"title": "Vuelo", "start": "2026-09-01T09:00:00", "end": "2026-09-01T10:00:00",
		"promoId": cohort.ID, "clase": "B",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var slot models.Slot
	decodeEnvelope(t, resp, &slot)
	require.True(t, slot.Available)

	studentToken := login(t, app, "agomez", "12345")

	resp = doJSON(t, app, http.MethodPost, "/api/v1/student/slots/"+slot.ID+"/reserve", studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var reserved models.Slot
	decodeEnvelope(t, resp, &reserved)
	require.Equal(t, "Ana Gomez", reserved.Student)
	require.False(t, reserved.Available)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/student/slots/"+slot.ID+"/reserve", studentToken, nil)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/admin/slots/"+slot.ID+"/flown", adminToken, fiber.Map{
		"hours": 2.5,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/slots/flight-log", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var log []struct {
		SlotID  string  `json:"slotId"`
		Student string  `json:"student"`
		Hours   float64 `json:"flownHours"`
	}
	decodeEnvelope(t, resp, &log)
	require.Len(t, log, 1)
	require.Equal(t, slot.ID, log[0].SlotID)
	require.Equal(t, 2.5, log[0].Hours)
}

func TestLogoutEndsTheSession(t *testing.T) {
	app := newBookingApp(t)
	adminToken := login(t, app, "admin", "admin")

	resp := doJSON(t, app, http.MethodGet, "/api/v1/auth/me", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/logout", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/auth/me", adminToken, nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/cohorts", adminToken, nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
