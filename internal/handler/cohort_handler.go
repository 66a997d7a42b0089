package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/aeroclub-norte/turnero-api/internal/dto"
	"github.com/aeroclub-norte/turnero-api/internal/service"
	"github.com/aeroclub-norte/turnero-api/internal/utils"
)

// CohortHandler wires the admin cohort management endpoints.
type CohortHandler struct {
	service service.CohortService
	logger  zerolog.Logger
}

// NewCohortHandler constructs the handler.
func NewCohortHandler(service service.CohortService, logger zerolog.Logger) *CohortHandler {
	return &CohortHandler{
		service: service,
		logger:  logger.With().Str("component", "cohort_handler").Logger(),
	}
}

// Register attaches cohort routes to the router group.
func (h *CohortHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *CohortHandler) list(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "cohorts retrieved", h.service.List(c.Context()))
}

func (h *CohortHandler) create(c *fiber.Ctx) error {
	var payload dto.CohortCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	cohort, err := h.service.Create(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create cohort")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create cohort")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "cohort created", cohort)
}

func (h *CohortHandler) update(c *fiber.Ctx) error {
	id, err := parseIntParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.CohortUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	cohort, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCohortNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "cohort not found")
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to update cohort")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to update cohort")
		}
	}

	return utils.SendSuccess(c, "cohort updated", cohort)
}

func (h *CohortHandler) delete(c *fiber.Ctx) error {
	id, err := parseIntParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	h.service.Delete(c.Context(), id)
	return utils.SendSuccess(c, "cohort deleted", fiber.Map{"id": id})
}
