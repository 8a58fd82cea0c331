package routes

import (
	"net/http"
	"time"

	"slotbook/handlers"
	"slotbook/middleware"
	"slotbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCompanyRoutes registers the company marketplace endpoints.
func RegisterCompanyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		// The marketplace listing is public.
		api.GET("/companies", hb.ListCompaniesHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		protected.POST("/companies", hb.CreateCompanyHandler)
		protected.PATCH("/companies/:id", hb.UpdateCompanyHandler)
		protected.GET("/my-company", hb.GetMyCompanyHandler)
	}
}

// RegisterBookingRoutes registers the availability and reservation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/slots", hb.GetAvailableSlotsHandler)

		api.POST("/reservations", hb.CreateReservationHandler)
		api.GET("/reservations", hb.ListMyReservationsHandler)
		api.GET("/company-reservations", hb.ListCompanyReservationsHandler)
		api.GET("/reservations/:id", hb.GetReservationHandler)
		api.PATCH("/reservations/:id", hb.UpdateReservationHandler)
		api.DELETE("/reservations/:id", hb.CancelReservationHandler)

		api.GET("/user/stats", hb.GetUserStatsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminAuthMiddleware())
		adminGroup.GET("/reservations", hb.AdminHandler.ListReservationsHandler)
		adminGroup.PATCH("/reservations/:id", hb.AdminHandler.UpdateReservationHandler)
		adminGroup.DELETE("/reservations/:id", hb.AdminHandler.DeleteReservationHandler)
		adminGroup.GET("/stats", hb.AdminHandler.StatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCompanyRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
