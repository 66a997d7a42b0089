package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aeroclub-norte/turnero-api/internal/dto"
	"github.com/aeroclub-norte/turnero-api/internal/store"
)

func newCohortFixture(t *testing.T) (CohortService, *store.CohortStore) {
	t.Helper()
	cohorts := store.NewCohortStore(testKV(t), testLogger())
	return NewCohortService(cohorts, testValidator(), testLogger()), cohorts
}

func TestCohortServiceCreate(t *testing.T) {
	svc, _ := newCohortFixture(t)

	cohort, err := svc.Create(context.Background(), dto.CohortCreateRequest{Name: " Promo 2026 ", Color: "#4ade80"})
	require.NoError(t, err)
	require.Equal(t, 1, cohort.ID)
	require.Equal(t, "Promo 2026", cohort.Name)
	require.Equal(t, "#4ade80", cohort.Color)
}

func TestCohortServiceCreateRejectsBadColor(t *testing.T) {
	svc, _ := newCohortFixture(t)

	_, err := svc.Create(context.Background(), dto.CohortCreateRequest{Name: "Promo", Color: "green"})
	require.Error(t, err)

	_, err = svc.Create(context.Background(), dto.CohortCreateRequest{Name: "", Color: "#4ade80"})
	require.Error(t, err)
}

func TestCohortServiceUpdate(t *testing.T) {
	svc, _ := newCohortFixture(t)
	cohort, err := svc.Create(context.Background(), dto.CohortCreateRequest{Name: "Promo", Color: "#4ade80"})
	require.NoError(t, err)

	name := "Promo renombrada"
	updated, err := svc.Update(context.Background(), cohort.ID, dto.CohortUpdateRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Promo renombrada", updated.Name)
	require.Equal(t, "#4ade80", updated.Color)
}

func TestCohortServiceUpdateUnknownID(t *testing.T) {
	svc, _ := newCohortFixture(t)

	name := "x"
	_, err := svc.Update(context.Background(), 99, dto.CohortUpdateRequest{Name: &name})
	require.ErrorIs(t, err, ErrCohortNotFound)
}

func TestCohortServiceDeleteIsIdempotent(t *testing.T) {
	svc, cohorts := newCohortFixture(t)
	cohort, err := svc.Create(context.Background(), dto.CohortCreateRequest{Name: "Promo", Color: "#4ade80"})
	require.NoError(t, err)

	svc.Delete(context.Background(), cohort.ID)
	svc.Delete(context.Background(), cohort.ID)
	svc.Delete(context.Background(), 99)
	require.Empty(t, cohorts.List())
}
