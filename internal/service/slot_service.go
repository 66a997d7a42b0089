package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/aeroclub-norte/turnero-api/internal/dto"
	"github.com/aeroclub-norte/turnero-api/internal/models"
	"github.com/aeroclub-norte/turnero-api/internal/store"
)

var (
	// ErrSlotNotFound indicates the slot id does not exist, or is outside
	// the caller's cohort and therefore not theirs to see.
	ErrSlotNotFound = errors.New("slot not found")
	// ErrSlotNotAvailable rejects a reservation on a slot that is not open.
	ErrSlotNotAvailable = errors.New("slot is not available")
	// ErrSlotNotReserved rejects recording hours on a slot nobody holds.
	ErrSlotNotReserved = errors.New("slot has no reservation")
	// ErrHoursOutOfRange rejects flown hours outside [0, tier cap].
	ErrHoursOutOfRange = errors.New("flown hours out of range for class tier")
)

// SlotService owns the slot lifecycle: Open slots get reserved, reserved
// slots get flown, and every transition goes through here so the guards
// cannot be bypassed by a generic field patch.
type SlotService interface {
	List(ctx context.Context) []models.Slot
	ListForCohort(ctx context.Context, cohortID int) []models.Slot
	Create(ctx context.Context, req dto.SlotCreateRequest) (models.Slot, error)
	Edit(ctx context.Context, id string, req dto.SlotEditRequest) (models.Slot, error)
	Delete(ctx context.Context, id string)
	Reserve(ctx context.Context, id string, identity models.SessionIdentity) (models.Slot, error)
	MarkFlown(ctx context.Context, id string, hours float64) (models.Slot, error)
	FlightLog(ctx context.Context) []dto.FlightLogEntry
}

type slotService struct {
	slots     *store.SlotStore
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewSlotService constructs the slot service.
func NewSlotService(slots *store.SlotStore, validator *validator.Validate, logger zerolog.Logger) SlotService {
	return &slotService{
		slots:     slots,
		validator: validator,
		logger:    logger.With().Str("component", "slot_service").Logger(),
	}
}

func (s *slotService) List(_ context.Context) []models.Slot {
	return s.slots.List()
}

func (s *slotService) ListForCohort(_ context.Context, cohortID int) []models.Slot {
	return s.slots.ListByCohort(cohortID)
}

func (s *slotService) Create(ctx context.Context, req dto.SlotCreateRequest) (models.Slot, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validator.Struct(req); err != nil {
		return models.Slot{}, err
	}

	slot := s.slots.Create(ctx, models.Slot{
		Start:     req.Start,
		End:       req.End,
		Title:     req.Title,
		CohortID:  req.CohortID,
		ClassTier: models.ClassTier(req.ClassTier),
		Available: true,
	})
	s.logger.Info().Str("slot_id", slot.ID).Int("cohort_id", slot.CohortID).Msg("slot created")
	return slot, nil
}

// Edit applies an administrative correction. Only title, schedule, cohort
// and class tier can change; the lifecycle fields are untouchable here.
func (s *slotService) Edit(ctx context.Context, id string, req dto.SlotEditRequest) (models.Slot, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Slot{}, err
	}

	slot, err := s.slots.Mutate(ctx, id, func(sl *models.Slot) error {
		if req.Title != nil {
			sl.Title = strings.TrimSpace(*req.Title)
		}
		if req.Start != nil {
			sl.Start = *req.Start
		}
		if req.End != nil {
			sl.End = *req.End
		}
		if req.CohortID != nil {
			sl.CohortID = *req.CohortID
		}
		if req.ClassTier != nil {
			sl.ClassTier = models.ClassTier(*req.ClassTier)
		}
		return nil
	})
	if err != nil {
		return models.Slot{}, mapSlotStoreErr(err)
	}
	return slot, nil
}

// Delete removes the slot from any state. Unknown ids are a no-op.
func (s *slotService) Delete(ctx context.Context, id string) {
	if s.slots.Delete(ctx, id) {
		s.logger.Info().Str("slot_id", id).Msg("slot deleted")
	}
}

// Reserve moves an open slot to reserved for the calling student. Slots
// outside the student's cohort are reported as not found rather than
// forbidden, so their existence is not leaked. The guard and the mutation
// run under one lock; two students racing for the last slot cannot both
// win.
func (s *slotService) Reserve(ctx context.Context, id string, identity models.SessionIdentity) (models.Slot, error) {
	slot, err := s.slots.Mutate(ctx, id, func(sl *models.Slot) error {
		if !identity.IsAdmin && sl.CohortID != identity.CohortID {
			return store.ErrRecordNotFound
		}
		if !sl.IsOpen() {
			return ErrSlotNotAvailable
		}
		sl.Available = false
		sl.Student = identity.Username
		return nil
	})
	if err != nil {
		return models.Slot{}, mapSlotStoreErr(err)
	}

	s.logger.Info().Str("slot_id", id).Str("student", identity.Username).Msg("slot reserved")
	return slot, nil
}

// MarkFlown records the flown hours on a reserved slot. The hours must fit
// the class-tier cap; anything outside is rejected and the slot keeps its
// state.
func (s *slotService) MarkFlown(ctx context.Context, id string, hours float64) (models.Slot, error) {
	slot, err := s.slots.Mutate(ctx, id, func(sl *models.Slot) error {
		if !sl.IsReserved() {
			return ErrSlotNotReserved
		}
		if hours < 0 || hours > sl.ClassTier.MaxHours() {
			return ErrHoursOutOfRange
		}
		recorded := hours
		sl.Flown = true
		sl.FlownHours = &recorded
		sl.Available = false
		return nil
	})
	if err != nil {
		return models.Slot{}, mapSlotStoreErr(err)
	}

	s.logger.Info().Str("slot_id", id).Float64("hours", hours).Msg("slot marked flown")
	return slot, nil
}

// FlightLog lists every flown slot with its student and recorded hours.
func (s *slotService) FlightLog(_ context.Context) []dto.FlightLogEntry {
	var entries []dto.FlightLogEntry
	for _, slot := range s.slots.List() {
		if !slot.IsFlown() {
			continue
		}
		hours := 0.0
		if slot.FlownHours != nil {
			hours = *slot.FlownHours
		}
		entries = append(entries, dto.FlightLogEntry{
			SlotID:    slot.ID,
			Student:   slot.Student,
			ClassTier: slot.ClassTier,
			Hours:     hours,
		})
	}
	return entries
}

func mapSlotStoreErr(err error) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return ErrSlotNotFound
	}
	return err
}
