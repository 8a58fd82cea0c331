package handlers

import (
	"errors"
	"net/http"

	"slotbook/middleware"
	companySvc "slotbook/services/company"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CompanyHandler serves the company profile endpoints.
type CompanyHandler struct {
	Service companySvc.CompanyService
}

// NewCompanyHandler creates a CompanyHandler.
func NewCompanyHandler(svc companySvc.CompanyService) *CompanyHandler {
	return &CompanyHandler{Service: svc}
}

// ListCompaniesHandler handles GET /api/companies. Public marketplace read.
func (h *CompanyHandler) ListCompaniesHandler(c *gin.Context) {
	companies, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list companies", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// CreateCompanyHandler handles POST /api/companies.
func (h *CompanyHandler) CreateCompanyHandler(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input companySvc.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	company, err := h.Service.Create(c.Request.Context(), identity, input)
	if err != nil {
		switch {
		case errors.Is(err, companySvc.ErrOwnerHasCompany):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already has a company"})
		case errors.Is(err, companySvc.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Failed to create company", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}

// UpdateCompanyHandler handles PATCH /api/companies/:id. Owner only.
func (h *CompanyHandler) UpdateCompanyHandler(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input companySvc.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	company, err := h.Service.Update(c.Request.Context(), identity, c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, companySvc.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		case errors.Is(err, companySvc.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		case errors.Is(err, companySvc.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Failed to update company", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}

// GetMyCompanyHandler handles GET /api/my-company. A null company is not an
// error; callers render the "create your company" flow off it.
func (h *CompanyHandler) GetMyCompanyHandler(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	company, err := h.Service.GetMine(c.Request.Context(), identity)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch my company", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}
