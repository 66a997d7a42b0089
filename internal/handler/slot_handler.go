package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/aeroclub-norte/turnero-api/internal/dto"
	"github.com/aeroclub-norte/turnero-api/internal/middleware"
	"github.com/aeroclub-norte/turnero-api/internal/service"
	"github.com/aeroclub-norte/turnero-api/internal/utils"
)

// SlotHandler wires the slot endpoints for both roles. Administrators see
// every slot and drive the full lifecycle; students see their own cohort
// and can only reserve.
type SlotHandler struct {
	service service.SlotService
	logger  zerolog.Logger
}

// NewSlotHandler constructs the handler.
func NewSlotHandler(service service.SlotService, logger zerolog.Logger) *SlotHandler {
	return &SlotHandler{
		service: service,
		logger:  logger.With().Str("component", "slot_handler").Logger(),
	}
}

// RegisterAdmin attaches the administrator slot routes.
func (h *SlotHandler) RegisterAdmin(router fiber.Router) {
	router.Get("", h.listAll)
	router.Post("", h.create)
	router.Get("/flight-log", h.flightLog)
	router.Patch("/:id", h.edit)
	router.Delete("/:id", h.delete)
	router.Post("/:id/flown", h.markFlown)
}

// RegisterStudent attaches the student slot routes.
func (h *SlotHandler) RegisterStudent(router fiber.Router) {
	router.Get("", h.listOwnCohort)
	router.Post("/:id/reserve", h.reserve)
}

func (h *SlotHandler) listAll(c *fiber.Ctx) error {
	slots := h.service.List(c.Context())
	return utils.SendSuccess(c, "slots retrieved", dto.NewSlotListResponse(slots))
}

func (h *SlotHandler) listOwnCohort(c *fiber.Ctx) error {
	identity, ok := middleware.SessionFromContext(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "no active session")
	}

	slots := h.service.ListForCohort(c.Context(), identity.CohortID)
	return utils.SendSuccess(c, "slots retrieved", dto.NewSlotListResponse(slots))
}

func (h *SlotHandler) create(c *fiber.Ctx) error {
	var payload dto.SlotCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	slot, err := h.service.Create(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create slot")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create slot")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "slot created", slot)
}

func (h *SlotHandler) edit(c *fiber.Ctx) error {
	var payload dto.SlotEditRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	slot, err := h.service.Edit(c.Context(), c.Params("id"), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlotNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "slot not found")
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to edit slot")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to edit slot")
		}
	}

	return utils.SendSuccess(c, "slot updated", slot)
}

func (h *SlotHandler) delete(c *fiber.Ctx) error {
	id := c.Params("id")
	h.service.Delete(c.Context(), id)
	return utils.SendSuccess(c, "slot deleted", fiber.Map{"id": id})
}

func (h *SlotHandler) reserve(c *fiber.Ctx) error {
	identity, ok := middleware.SessionFromContext(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "no active session")
	}

	slot, err := h.service.Reserve(c.Context(), c.Params("id"), identity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlotNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "slot not found")
		case errors.Is(err, service.ErrSlotNotAvailable):
			return utils.SendError(c, fiber.StatusConflict, "slot is no longer available")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to reserve slot")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to reserve slot")
		}
	}

	return utils.SendSuccess(c, "slot reserved", slot)
}

func (h *SlotHandler) markFlown(c *fiber.Ctx) error {
	var payload dto.MarkFlownRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	slot, err := h.service.MarkFlown(c.Context(), c.Params("id"), payload.Hours)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlotNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "slot not found")
		case errors.Is(err, service.ErrSlotNotReserved):
			return utils.SendError(c, fiber.StatusConflict, "slot has no reservation to record hours on")
		case errors.Is(err, service.ErrHoursOutOfRange):
			return utils.SendError(c, fiber.StatusBadRequest, "flown hours exceed the class tier cap")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to mark slot flown")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to mark slot flown")
		}
	}

	return utils.SendSuccess(c, "slot marked flown", slot)
}

func (h *SlotHandler) flightLog(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "flight log retrieved", h.service.FlightLog(c.Context()))
}
