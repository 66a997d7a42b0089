package store

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/aeroclub-norte/turnero-api/internal/models"
)

const cohortsKey = "cohorts"

// CohortStore owns the cohort collection. Cohort ids are monotonically
// increasing integers: max existing id plus one, or 1 when empty, so an id
// is never reused while higher ones exist.
type CohortStore struct {
	col *Collection[models.Cohort]
}

// NewCohortStore builds the store on top of the substrate.
func NewCohortStore(kv KeyValue, logger zerolog.Logger) *CohortStore {
	col := NewCollection(cohortsKey, kv, func(c models.Cohort) string {
		return strconv.Itoa(c.ID)
	}, logger)
	return &CohortStore{col: col}
}

// Load hydrates the collection from the substrate.
func (s *CohortStore) Load(ctx context.Context) error {
	return s.col.Load(ctx)
}

// List returns all cohorts in insertion order.
func (s *CohortStore) List() []models.Cohort {
	return s.col.List()
}

// Get returns the cohort with the given id.
func (s *CohortStore) Get(id int) (models.Cohort, bool) {
	return s.col.Get(strconv.Itoa(id))
}

// FirstID returns the id of the first cohort, used as the import fallback
// when a row carries no usable cohort number.
func (s *CohortStore) FirstID() (int, bool) {
	cohorts := s.col.List()
	if len(cohorts) == 0 {
		return 0, false
	}
	return cohorts[0].ID, true
}

// Create assigns the next id and appends the cohort.
func (s *CohortStore) Create(ctx context.Context, name, color string) models.Cohort {
	return s.col.Insert(ctx, func(items []models.Cohort) models.Cohort {
		next := 1
		for _, c := range items {
			if c.ID >= next {
				next = c.ID + 1
			}
		}
		return models.Cohort{ID: next, Name: name, Color: color}
	})
}

// Update merges fields into the matching cohort; missing ids are a no-op.
func (s *CohortStore) Update(ctx context.Context, id int, merge func(*models.Cohort)) bool {
	return s.col.Update(ctx, strconv.Itoa(id), merge)
}

// Delete removes the cohort. Students and slots referencing it are left
// orphaned on purpose; there is no referential integrity here.
func (s *CohortStore) Delete(ctx context.Context, id int) bool {
	return s.col.Delete(ctx, strconv.Itoa(id))
}
