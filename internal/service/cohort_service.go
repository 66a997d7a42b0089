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

// ErrCohortNotFound indicates the cohort id does not exist.
var ErrCohortNotFound = errors.New("cohort not found")

// CohortService manages the cohort collection.
type CohortService interface {
	List(ctx context.Context) []models.Cohort
	Create(ctx context.Context, req dto.CohortCreateRequest) (models.Cohort, error)
	Update(ctx context.Context, id int, req dto.CohortUpdateRequest) (models.Cohort, error)
	Delete(ctx context.Context, id int)
}

type cohortService struct {
	cohorts   *store.CohortStore
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCohortService constructs the cohort service.
func NewCohortService(cohorts *store.CohortStore, validator *validator.Validate, logger zerolog.Logger) CohortService {
	return &cohortService{
		cohorts:   cohorts,
		validator: validator,
		logger:    logger.With().Str("component", "cohort_service").Logger(),
	}
}

func (s *cohortService) List(_ context.Context) []models.Cohort {
	return s.cohorts.List()
}

func (s *cohortService) Create(ctx context.Context, req dto.CohortCreateRequest) (models.Cohort, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return models.Cohort{}, err
	}

	cohort := s.cohorts.Create(ctx, req.Name, req.Color)
	s.logger.Info().Int("cohort_id", cohort.ID).Str("name", cohort.Name).Msg("cohort created")
	return cohort, nil
}

func (s *cohortService) Update(ctx context.Context, id int, req dto.CohortUpdateRequest) (models.Cohort, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Cohort{}, err
	}

	var updated models.Cohort
	found := s.cohorts.Update(ctx, id, func(c *models.Cohort) {
		if req.Name != nil {
			c.Name = strings.TrimSpace(*req.Name)
		}
		if req.Color != nil {
			c.Color = *req.Color
		}
		updated = *c
	})
	if !found {
		return models.Cohort{}, ErrCohortNotFound
	}
	return updated, nil
}

// Delete removes the cohort. Unknown ids are a no-op, and students or slots
// referencing the cohort are left pointing at a gone id; the original
// behaves the same way and nothing downstream depends on integrity here.
func (s *cohortService) Delete(ctx context.Context, id int) {
	if s.cohorts.Delete(ctx, id) {
		s.logger.Info().Int("cohort_id", id).Msg("cohort deleted")
	}
}
