package handlers

import (
	"errors"
	"net/http"
	"time"

	reservationRepo "slotbook/database/repository/reservation"
	adminSvc "slotbook/services/admin"
	reservationSvc "slotbook/services/reservation"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the administrative reservation endpoints. The routes
// sit behind the admin role gate.
type AdminHandler struct {
	Service adminSvc.AdminService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminSvc.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// ListReservationsHandler handles GET /api/admin/reservations with optional
// status, startDate and endDate filters.
func (h *AdminHandler) ListReservationsHandler(c *gin.Context) {
	filter := reservationRepo.Filter{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	if status := c.Query("status"); status != "" && status != "all" {
		filter.Status = status
	}

	listing, err := h.Service.ListReservations(c.Request.Context(), filter)
	if err != nil {
		utils.GetLogger().Error("Failed to list reservations", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch reservations", "")
		return
	}
	c.JSON(http.StatusOK, listing)
}

// UpdateReservationHandler handles PATCH /api/admin/reservations/:id.
func (h *AdminHandler) UpdateReservationHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	reservation, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, reservationSvc.ErrInvalidStatus), errors.Is(err, reservationSvc.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, reservationSvc.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		default:
			utils.GetLogger().Error("Failed to update reservation", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update reservation", "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// DeleteReservationHandler handles DELETE /api/admin/reservations/:id, the
// only path that permanently removes a reservation.
func (h *AdminHandler) DeleteReservationHandler(c *gin.Context) {
	if err := h.Service.HardDelete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, reservationSvc.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		utils.GetLogger().Error("Failed to delete reservation", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete reservation", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}

// StatsHandler handles GET /api/admin/stats. Windows are anchored to the
// moment of the call.
func (h *AdminHandler) StatsHandler(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context(), time.Now())
	if err != nil {
		utils.GetLogger().Error("Failed to compute admin stats", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch statistics", "")
		return
	}
	c.JSON(http.StatusOK, stats)
}
