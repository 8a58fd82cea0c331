package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	// Company endpoints.
	ListCompaniesHandler gin.HandlerFunc
	CreateCompanyHandler gin.HandlerFunc
	UpdateCompanyHandler gin.HandlerFunc
	GetMyCompanyHandler  gin.HandlerFunc

	// Availability endpoint.
	GetAvailableSlotsHandler gin.HandlerFunc

	// Reservation endpoints.
	CreateReservationHandler       gin.HandlerFunc
	ListMyReservationsHandler      gin.HandlerFunc
	ListCompanyReservationsHandler gin.HandlerFunc
	GetReservationHandler          gin.HandlerFunc
	UpdateReservationHandler       gin.HandlerFunc
	CancelReservationHandler       gin.HandlerFunc

	// Stats endpoints.
	GetUserStatsHandler gin.HandlerFunc

	// Admin endpoints.
	AdminHandler *AdminHandler
}
