package company

import (
	"context"
	"testing"

	companyRepo "slotbook/database/repository/company"
	"slotbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompanyService() *DefaultCompanyService {
	return &DefaultCompanyService{Repo: companyRepo.NewMemoryCompanyRepo()}
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := newTestCompanyService()

	company, err := svc.Create(context.Background(), models.Identity{UserID: "owner-1"}, CreateInput{
		Name:        "Glow Salon",
		Description: "Hair and nails",
	})
	require.NoError(t, err)

	assert.Equal(t, "owner-1", company.OwnerID)
	assert.Equal(t, DefaultWorkingHoursStart, company.WorkingHoursStart)
	assert.Equal(t, DefaultWorkingHoursEnd, company.WorkingHoursEnd)
	assert.Equal(t, DefaultSlotDurationMinutes, company.SlotDurationMinutes)
	assert.NotEmpty(t, company.ID)
}

func TestCreateRequiresNameAndDescription(t *testing.T) {
	svc := newTestCompanyService()
	identity := models.Identity{UserID: "owner-1"}

	_, err := svc.Create(context.Background(), identity, CreateInput{Description: "d"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), identity, CreateInput{Name: "n"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRejectsBadSchedule(t *testing.T) {
	svc := newTestCompanyService()
	identity := models.Identity{UserID: "owner-1"}

	_, err := svc.Create(context.Background(), identity, CreateInput{
		Name: "n", Description: "d",
		WorkingHoursStart: "18:00", WorkingHoursEnd: "08:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), identity, CreateInput{
		Name: "n", Description: "d",
		SlotDurationMinutes: -30,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), identity, CreateInput{
		Name: "n", Description: "d",
		WorkingHoursStart: "9am",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateOnePerOwner(t *testing.T) {
	svc := newTestCompanyService()
	identity := models.Identity{UserID: "owner-1"}
	input := CreateInput{Name: "Glow Salon", Description: "Hair and nails"}

	_, err := svc.Create(context.Background(), identity, input)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), identity, input)
	assert.ErrorIs(t, err, ErrOwnerHasCompany)
}

func TestUpdateOwnerOnly(t *testing.T) {
	svc := newTestCompanyService()
	owner := models.Identity{UserID: "owner-1"}

	company, err := svc.Create(context.Background(), owner, CreateInput{Name: "Glow Salon", Description: "Hair and nails"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), models.Identity{UserID: "stranger"}, company.ID, UpdateInput{Name: "Hijacked"})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Update(context.Background(), owner, company.ID, UpdateInput{
		Name:                "Glow Studio",
		SlotDurationMinutes: 45,
	})
	require.NoError(t, err)
	assert.Equal(t, "Glow Studio", updated.Name)
	assert.Equal(t, 45, updated.SlotDurationMinutes)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Hair and nails", updated.Description)
}

func TestUpdateRevalidatesSchedule(t *testing.T) {
	svc := newTestCompanyService()
	owner := models.Identity{UserID: "owner-1"}

	company, err := svc.Create(context.Background(), owner, CreateInput{Name: "Glow Salon", Description: "Hair and nails"})
	require.NoError(t, err)

	// Moving the end before the existing start must be rejected.
	_, err = svc.Update(context.Background(), owner, company.ID, UpdateInput{WorkingHoursEnd: "07:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), owner, "missing", UpdateInput{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetMine(t *testing.T) {
	svc := newTestCompanyService()
	owner := models.Identity{UserID: "owner-1"}

	created, err := svc.Create(context.Background(), owner, CreateInput{Name: "Glow Salon", Description: "Hair and nails"})
	require.NoError(t, err)

	mine, err := svc.GetMine(context.Background(), owner)
	require.NoError(t, err)
	require.NotNil(t, mine)
	assert.Equal(t, created.ID, mine.ID)

	none, err := svc.GetMine(context.Background(), models.Identity{UserID: "nobody"})
	require.NoError(t, err)
	assert.Nil(t, none)
}
