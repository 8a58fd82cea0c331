package handlers

import (
	"errors"
	"net/http"

	"slotbook/services/scheduling"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlotHandler serves the availability read path.
type SlotHandler struct {
	Engine scheduling.SchedulingService
}

// NewSlotHandler creates a SlotHandler.
func NewSlotHandler(engine scheduling.SchedulingService) *SlotHandler {
	return &SlotHandler{Engine: engine}
}

// GetAvailableSlotsHandler handles GET /api/slots?companyId=&date=.
// The result is advisory: nothing is reserved until booking.
func (h *SlotHandler) GetAvailableSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	companyID := c.Query("companyId")

	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date parameter is required"})
		return
	}
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CompanyId parameter is required"})
		return
	}

	slots, err := h.Engine.ResolveAvailability(c.Request.Context(), companyID, date)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrCompanyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		case errors.Is(err, scheduling.ErrInvalidConfiguration):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Failed to resolve availability",
				zap.String("companyID", companyID), zap.String("date", date), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch available slots", "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
