package handlers

import (
	"errors"
	"net/http"

	"slotbook/middleware"
	reservationSvc "slotbook/services/reservation"
	"slotbook/services/scheduling"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler serves the booking write path and reservation reads.
type ReservationHandler struct {
	Engine  scheduling.SchedulingService
	Service reservationSvc.ReservationService
}

// NewReservationHandler creates a ReservationHandler.
func NewReservationHandler(engine scheduling.SchedulingService, svc reservationSvc.ReservationService) *ReservationHandler {
	return &ReservationHandler{Engine: engine, Service: svc}
}

// CreateReservationHandler handles POST /api/reservations.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input scheduling.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	reservation, err := h.Engine.Book(c.Request.Context(), identity, input)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrInvalidInput), errors.Is(err, scheduling.ErrInvalidConfiguration):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, scheduling.ErrCompanyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		case errors.Is(err, scheduling.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Time slot is not available"})
		default:
			utils.GetLogger().Error("Failed to create reservation", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create reservation", "")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reservation": reservation})
}

// ListMyReservationsHandler handles GET /api/reservations.
func (h *ReservationHandler) ListMyReservationsHandler(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reservations, err := h.Service.ListMine(c.Request.Context(), identity)
	if err != nil {
		utils.GetLogger().Error("Failed to list reservations", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch reservations", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// ListCompanyReservationsHandler handles GET /api/company-reservations: the
// reservations of the caller's own company, empty when they own none.
func (h *ReservationHandler) ListCompanyReservationsHandler(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reservations, err := h.Service.ListForOwnedCompany(c.Request.Context(), identity)
	if err != nil {
		utils.GetLogger().Error("Failed to list company reservations", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch reservations", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// GetReservationHandler handles GET /api/reservations/:id.
func (h *ReservationHandler) GetReservationHandler(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reservation, err := h.Service.Get(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		h.respondLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// UpdateReservationHandler handles PATCH /api/reservations/:id.
func (h *ReservationHandler) UpdateReservationHandler(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input reservationSvc.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	reservation, err := h.Service.Update(c.Request.Context(), identity, c.Param("id"), input)
	if err != nil {
		h.respondLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// CancelReservationHandler handles DELETE /api/reservations/:id. Always a
// soft status flip; hard deletion lives on the admin path.
func (h *ReservationHandler) CancelReservationHandler(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.Cancel(c.Request.Context(), identity, c.Param("id")); err != nil {
		h.respondLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled successfully"})
}

func (h *ReservationHandler) respondLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reservationSvc.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
	case errors.Is(err, reservationSvc.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, reservationSvc.ErrInvalidStatus), errors.Is(err, reservationSvc.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Reservation operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
