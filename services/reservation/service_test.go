package reservation

import (
	"context"
	"testing"
	"time"

	companyRepo "slotbook/database/repository/company"
	reservationRepo "slotbook/database/repository/reservation"
	"slotbook/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*DefaultReservationService, *models.Company, *models.Reservation) {
	t.Helper()
	companies := companyRepo.NewMemoryCompanyRepo()
	reservations := reservationRepo.NewMemoryReservationRepo()

	now := time.Now()
	company := &models.Company{
		ID:                  uuid.New().String(),
		OwnerID:             "owner-1",
		Name:                "Glow Salon",
		Description:         "Hair and nails",
		WorkingHoursStart:   "09:00",
		WorkingHoursEnd:     "17:00",
		SlotDurationMinutes: 60,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	require.NoError(t, companies.Create(context.Background(), company))

	res := &models.Reservation{
		ID:        uuid.New().String(),
		UserID:    "customer-1",
		CompanyID: company.ID,
		Date:      "2026-09-01",
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, reservations.Create(context.Background(), res))

	svc := &DefaultReservationService{Repo: reservations, CompanyRepo: companies}
	return svc, company, res
}

func strPtr(s string) *string { return &s }

func TestGetAuthorization(t *testing.T) {
	svc, _, res := newTestService(t)
	ctx := context.Background()

	got, err := svc.Get(ctx, models.Identity{UserID: "customer-1"}, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.ID, got.ID)

	got, err = svc.Get(ctx, models.Identity{UserID: "owner-1"}, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.ID, got.ID)

	_, err = svc.Get(ctx, models.Identity{UserID: "stranger"}, res.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// Existence is checked before ownership.
	_, err = svc.Get(ctx, models.Identity{UserID: "stranger"}, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusAndNotes(t *testing.T) {
	svc, _, res := newTestService(t)
	ctx := context.Background()
	customer := models.Identity{UserID: "customer-1"}

	updated, err := svc.Update(ctx, customer, res.ID, UpdateInput{
		Status: strPtr(models.StatusConfirmed),
		Notes:  strPtr("bring own towel"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Equal(t, "bring own towel", updated.Notes)

	// Notes-only update keeps the status.
	updated, err = svc.Update(ctx, customer, res.ID, UpdateInput{Notes: strPtr("changed")})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Equal(t, "changed", updated.Notes)
}

func TestUpdateRejectsInvalidStatus(t *testing.T) {
	svc, _, res := newTestService(t)
	customer := models.Identity{UserID: "customer-1"}

	_, err := svc.Update(context.Background(), customer, res.ID, UpdateInput{Status: strPtr("paused")})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateRejectsInvalidTransition(t *testing.T) {
	svc, _, res := newTestService(t)
	ctx := context.Background()
	customer := models.Identity{UserID: "customer-1"}

	require.NoError(t, svc.Cancel(ctx, customer, res.ID))

	_, err := svc.Update(ctx, customer, res.ID, UpdateInput{Status: strPtr(models.StatusConfirmed)})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelIsIdempotent(t *testing.T) {
	svc, _, res := newTestService(t)
	ctx := context.Background()
	customer := models.Identity{UserID: "customer-1"}

	require.NoError(t, svc.Cancel(ctx, customer, res.ID))
	require.NoError(t, svc.Cancel(ctx, customer, res.ID))

	got, err := svc.Get(ctx, customer, res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, got.Status)
}

func TestCancelForbiddenForStranger(t *testing.T) {
	svc, _, res := newTestService(t)
	err := svc.Cancel(context.Background(), models.Identity{UserID: "stranger"}, res.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListMine(t *testing.T) {
	svc, _, res := newTestService(t)

	mine, err := svc.ListMine(context.Background(), models.Identity{UserID: "customer-1"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, res.ID, mine[0].ID)

	other, err := svc.ListMine(context.Background(), models.Identity{UserID: "someone-else"})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestListForOwnedCompany(t *testing.T) {
	svc, _, res := newTestService(t)

	list, err := svc.ListForOwnedCompany(context.Background(), models.Identity{UserID: "owner-1"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, res.ID, list[0].ID)

	// A caller without a company gets an empty list, not an error.
	list, err = svc.ListForOwnedCompany(context.Background(), models.Identity{UserID: "not-an-owner"})
	require.NoError(t, err)
	assert.Empty(t, list)
}
