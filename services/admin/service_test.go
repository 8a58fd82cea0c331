package admin

import (
	"context"
	"testing"
	"time"

	reservationRepo "slotbook/database/repository/reservation"
	"slotbook/models"
	reservationSvc "slotbook/services/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminFixture(t *testing.T) (*DefaultAdminService, *reservationRepo.MemoryReservationRepo, *models.Reservation) {
	t.Helper()
	repo := reservationRepo.NewMemoryReservationRepo()
	svc := &DefaultAdminService{Repo: repo}

	now := time.Now()
	res := &models.Reservation{
		ID:        uuid.New().String(),
		UserID:    "customer-1",
		CompanyID: uuid.New().String(),
		Date:      "2026-09-01",
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), res))
	return svc, repo, res
}

func TestListReservations(t *testing.T) {
	svc, repo, _ := newAdminFixture(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, repo.Create(ctx, &models.Reservation{
		ID:        uuid.New().String(),
		UserID:    "customer-2",
		CompanyID: uuid.New().String(),
		Date:      "2026-09-02",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    models.StatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}))

	listing, err := svc.ListReservations(ctx, reservationRepo.Filter{})
	require.NoError(t, err)
	assert.Len(t, listing.Reservations, 2)
	assert.Equal(t, int64(2), listing.Stats.Total)
	assert.Equal(t, int64(1), listing.Stats.Pending)
	assert.Equal(t, int64(1), listing.Stats.Confirmed)

	// Status filter narrows the rows but counts stay platform wide.
	listing, err = svc.ListReservations(ctx, reservationRepo.Filter{Status: models.StatusConfirmed})
	require.NoError(t, err)
	require.Len(t, listing.Reservations, 1)
	assert.Equal(t, models.StatusConfirmed, listing.Reservations[0].Status)
	assert.Equal(t, int64(2), listing.Stats.Total)

	// No matches yields an empty slice, not nil.
	listing, err = svc.ListReservations(ctx, reservationRepo.Filter{StartDate: "2027-01-01"})
	require.NoError(t, err)
	assert.NotNil(t, listing.Reservations)
	assert.Empty(t, listing.Reservations)
}

func TestAdminUpdateStatus(t *testing.T) {
	svc, _, res := newAdminFixture(t)
	ctx := context.Background()

	updated, err := svc.UpdateStatus(ctx, res.ID, models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)

	_, err = svc.UpdateStatus(ctx, res.ID, "paused")
	assert.ErrorIs(t, err, reservationSvc.ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, "missing", models.StatusConfirmed)
	assert.ErrorIs(t, err, reservationSvc.ErrNotFound)

	// Cancelled is terminal even for admins.
	_, err = svc.UpdateStatus(ctx, res.ID, models.StatusCancelled)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, res.ID, models.StatusConfirmed)
	assert.ErrorIs(t, err, reservationSvc.ErrInvalidTransition)
}

func TestAdminHardDelete(t *testing.T) {
	svc, repo, res := newAdminFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.HardDelete(ctx, res.ID))

	_, err := repo.GetByID(ctx, res.ID)
	assert.ErrorIs(t, err, reservationRepo.ErrNotFound)

	err = svc.HardDelete(ctx, res.ID)
	assert.ErrorIs(t, err, reservationSvc.ErrNotFound)
}
