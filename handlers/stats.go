package handlers

import (
	"net/http"
	"time"

	"slotbook/middleware"
	adminSvc "slotbook/services/admin"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserStatsHandler serves the customer dashboard aggregates.
type UserStatsHandler struct {
	Service adminSvc.AdminService
}

// NewUserStatsHandler creates a UserStatsHandler.
func NewUserStatsHandler(svc adminSvc.AdminService) *UserStatsHandler {
	return &UserStatsHandler{Service: svc}
}

// GetUserStatsHandler handles GET /api/user/stats.
func (h *UserStatsHandler) GetUserStatsHandler(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.Service.StatsForUser(c.Request.Context(), identity.UserID, time.Now())
	if err != nil {
		utils.GetLogger().Error("Failed to compute user stats", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch statistics", "")
		return
	}
	c.JSON(http.StatusOK, stats)
}
