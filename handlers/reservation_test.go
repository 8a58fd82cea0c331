package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	companyRepo "slotbook/database/repository/company"
	reservationRepo "slotbook/database/repository/reservation"
	"slotbook/middleware"
	"slotbook/models"
	reservationSvc "slotbook/services/reservation"
	"slotbook/services/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reservationFixture struct {
	router       *gin.Engine
	companies    *companyRepo.MemoryCompanyRepo
	reservations *reservationRepo.MemoryReservationRepo
	company      *models.Company
}

// identityInjector stands in for AuthMiddleware so tests can act as a fixed
// caller without minting tokens.
func identityInjector(identity models.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, identity)
		c.Next()
	}
}

func newReservationFixture(t *testing.T, identity models.Identity) *reservationFixture {
	t.Helper()
	companies := companyRepo.NewMemoryCompanyRepo()
	reservations := reservationRepo.NewMemoryReservationRepo()
	engine := &scheduling.DefaultSchedulingEngine{
		CompanyRepo:     companies,
		ReservationRepo: reservations,
	}
	svc := &reservationSvc.DefaultReservationService{
		Repo:        reservations,
		CompanyRepo: companies,
	}

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

	handler := NewReservationHandler(engine, svc)
	router := gin.New()
	group := router.Group("/api", identityInjector(identity))
	group.POST("/reservations", handler.CreateReservationHandler)
	group.GET("/reservations", handler.ListMyReservationsHandler)
	group.GET("/reservations/:id", handler.GetReservationHandler)
	group.DELETE("/reservations/:id", handler.CancelReservationHandler)

	return &reservationFixture{router: router, companies: companies, reservations: reservations, company: company}
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateReservation(t *testing.T) {
	identity := models.Identity{UserID: "customer-1", Name: "Ada", Email: "ada@example.com", Role: models.RoleUser}
	f := newReservationFixture(t, identity)

	w := postJSON(t, f.router, "/api/reservations", gin.H{
		"companyId":   f.company.ID,
		"companyName": f.company.Name,
		"date":        "2026-09-01",
		"startTime":   "10:00",
		"endTime":     "11:00",
		"duration":    60,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Reservation models.Reservation `json:"reservation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "customer-1", body.Reservation.UserID)
	assert.Equal(t, models.StatusConfirmed, body.Reservation.Status)
	assert.Equal(t, "10:00", body.Reservation.StartTime)
}

func TestCreateReservationConflict(t *testing.T) {
	identity := models.Identity{UserID: "customer-1", Role: models.RoleUser}
	f := newReservationFixture(t, identity)

	payload := gin.H{
		"companyId":   f.company.ID,
		"companyName": f.company.Name,
		"date":        "2026-09-01",
		"startTime":   "10:00",
		"endTime":     "11:00",
		"duration":    60,
	}
	require.Equal(t, http.StatusCreated, postJSON(t, f.router, "/api/reservations", payload).Code)
	assert.Equal(t, http.StatusConflict, postJSON(t, f.router, "/api/reservations", payload).Code)
}

func TestCreateReservationValidationErrors(t *testing.T) {
	identity := models.Identity{UserID: "customer-1", Role: models.RoleUser}
	f := newReservationFixture(t, identity)

	// End time disagreeing with start + duration.
	w := postJSON(t, f.router, "/api/reservations", gin.H{
		"companyId":   f.company.ID,
		"companyName": f.company.Name,
		"date":        "2026-09-01",
		"startTime":   "10:00",
		"endTime":     "11:30",
		"duration":    60,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown company.
	w = postJSON(t, f.router, "/api/reservations", gin.H{
		"companyId":   "missing",
		"companyName": "Nowhere",
		"date":        "2026-09-01",
		"startTime":   "10:00",
		"endTime":     "11:00",
		"duration":    60,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAndCancelReservation(t *testing.T) {
	identity := models.Identity{UserID: "customer-1", Role: models.RoleUser}
	f := newReservationFixture(t, identity)

	w := postJSON(t, f.router, "/api/reservations", gin.H{
		"companyId":   f.company.ID,
		"companyName": f.company.Name,
		"date":        "2026-09-01",
		"startTime":   "10:00",
		"endTime":     "11:00",
		"duration":    60,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Reservation models.Reservation `json:"reservation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/"+created.Reservation.ID, nil)
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/reservations/"+created.Reservation.ID, nil)
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	stored, err := f.reservations.GetByID(context.Background(), created.Reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.Status)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/reservations/missing", nil)
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMyReservationsEndpoint(t *testing.T) {
	identity := models.Identity{UserID: "customer-1", Role: models.RoleUser}
	f := newReservationFixture(t, identity)

	require.Equal(t, http.StatusCreated, postJSON(t, f.router, "/api/reservations", gin.H{
		"companyId":   f.company.ID,
		"companyName": f.company.Name,
		"date":        "2026-09-01",
		"startTime":   "10:00",
		"endTime":     "11:00",
		"duration":    60,
	}).Code)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Reservations []models.Reservation `json:"reservations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Reservations, 1)
	assert.Equal(t, "customer-1", body.Reservations[0].UserID)
}
