package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aeroclub-norte/turnero-api/internal/models"
)

const slotsKey = "slots"

// SlotStore owns the slot collection. Lifecycle rules live in the slot
// service; the store only knows how to persist and address records.
type SlotStore struct {
	col *Collection[models.Slot]
}

// NewSlotStore builds the store on top of the substrate.
func NewSlotStore(kv KeyValue, logger zerolog.Logger) *SlotStore {
	col := NewCollection(slotsKey, kv, func(s models.Slot) string {
		return s.ID
	}, logger)
	return &SlotStore{col: col}
}

// Load hydrates the collection from the substrate.
func (s *SlotStore) Load(ctx context.Context) error {
	return s.col.Load(ctx)
}

// List returns all slots in insertion order.
func (s *SlotStore) List() []models.Slot {
	return s.col.List()
}

// ListByCohort returns the slots belonging to one cohort, in insertion
// order. Students only ever see their own cohort through this.
func (s *SlotStore) ListByCohort(cohortID int) []models.Slot {
	all := s.col.List()
	out := make([]models.Slot, 0, len(all))
	for _, slot := range all {
		if slot.CohortID == cohortID {
			out = append(out, slot)
		}
	}
	return out
}

// Get returns the slot with the given id.
func (s *SlotStore) Get(id string) (models.Slot, bool) {
	return s.col.Get(id)
}

// Create assigns a fresh id and appends the slot.
func (s *SlotStore) Create(ctx context.Context, slot models.Slot) models.Slot {
	slot.ID = uuid.NewString()
	s.col.Append(ctx, slot)
	return slot
}

// Update merges fields into the matching slot; missing ids are a no-op.
func (s *SlotStore) Update(ctx context.Context, id string, merge func(*models.Slot)) bool {
	return s.col.Update(ctx, id, merge)
}

// Mutate applies a guarded transition to the slot under the collection
// lock. ErrRecordNotFound when the id is unknown; any error from fn leaves
// the slot untouched.
func (s *SlotStore) Mutate(ctx context.Context, id string, fn func(*models.Slot) error) (models.Slot, error) {
	return s.col.Mutate(ctx, id, fn)
}

// Delete removes the slot from any state; missing ids are a no-op.
func (s *SlotStore) Delete(ctx context.Context, id string) bool {
	return s.col.Delete(ctx, id)
}
