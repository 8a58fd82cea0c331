package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	companyRepo "slotbook/database/repository/company"
	reservationRepo "slotbook/database/repository/reservation"
	"slotbook/models"
	"slotbook/services/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type slotFixture struct {
	router       *gin.Engine
	companies    *companyRepo.MemoryCompanyRepo
	reservations *reservationRepo.MemoryReservationRepo
	company      *models.Company
}

func newSlotFixture(t *testing.T) *slotFixture {
	t.Helper()
	companies := companyRepo.NewMemoryCompanyRepo()
	reservations := reservationRepo.NewMemoryReservationRepo()
	engine := &scheduling.DefaultSchedulingEngine{
		CompanyRepo:     companies,
		ReservationRepo: reservations,
	}

	now := time.Now()
	company := &models.Company{
		ID:                  uuid.New().String(),
		OwnerID:             "owner-1",
		Name:                "Glow Salon",
		Description:         "Hair and nails",
		WorkingHoursStart:   "09:00",
		WorkingHoursEnd:     "12:00",
		SlotDurationMinutes: 60,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	require.NoError(t, companies.Create(context.Background(), company))

	router := gin.New()
	handler := NewSlotHandler(engine)
	router.GET("/api/slots", handler.GetAvailableSlotsHandler)

	return &slotFixture{router: router, companies: companies, reservations: reservations, company: company}
}

func TestGetAvailableSlots(t *testing.T) {
	f := newSlotFixture(t)

	now := time.Now()
	require.NoError(t, f.reservations.Create(context.Background(), &models.Reservation{
		ID:        uuid.New().String(),
		UserID:    "customer-1",
		CompanyID: f.company.ID,
		Date:      "2026-09-01",
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    models.StatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots?companyId="+f.company.ID+"&date=2026-09-01", nil)
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Slots []models.TimeSlot `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Slots, 3)

	assert.Equal(t, "09:00", body.Slots[0].StartTime)
	assert.True(t, body.Slots[0].IsAvailable)
	assert.Equal(t, "10:00", body.Slots[1].StartTime)
	assert.False(t, body.Slots[1].IsAvailable)
	assert.True(t, body.Slots[2].IsAvailable)
}

func TestGetAvailableSlotsMissingParams(t *testing.T) {
	f := newSlotFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots?companyId="+f.company.ID, nil)
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/slots?date=2026-09-01", nil)
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailableSlotsUnknownCompany(t *testing.T) {
	f := newSlotFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots?companyId=missing&date=2026-09-01", nil)
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
