package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotbook/config"
	"slotbook/cron"
	"slotbook/database"
	companyRepoPkg "slotbook/database/repository/company"
	reservationRepoPkg "slotbook/database/repository/reservation"
	timeslotRepoPkg "slotbook/database/repository/timeslot"
	"slotbook/handlers"
	"slotbook/middleware"
	"slotbook/routes"
	adminSvc "slotbook/services/admin"
	companySvc "slotbook/services/company"
	reservationSvc "slotbook/services/reservation"
	"slotbook/services/scheduling"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	companyRepo := companyRepoPkg.NewMongoCompanyRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	slotCache := timeslotRepoPkg.NewRedisSlotCache(
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.SlotCacheTTLSeconds)*time.Second,
	)

	// Reminder queue and its background worker.
	reminderQueue := cron.NewReminderQueue()
	cron.InitReminderWorker(reservationRepo)

	// Services.
	schedulingEngine := &scheduling.DefaultSchedulingEngine{
		CompanyRepo:     companyRepo,
		ReservationRepo: reservationRepo,
		SlotCache:       slotCache,
		CacheReads:      config.AppConfig.SlotCacheEnabled,
		Reminders:       reminderQueue,
	}
	companyService := &companySvc.DefaultCompanyService{
		Repo: companyRepo,
	}
	reservationService := &reservationSvc.DefaultReservationService{
		Repo:        reservationRepo,
		CompanyRepo: companyRepo,
		SlotCache:   slotCache,
	}
	adminService := &adminSvc.DefaultAdminService{
		Repo:      reservationRepo,
		SlotCache: slotCache,
	}

	// Handlers.
	companyHandler := handlers.NewCompanyHandler(companyService)
	slotHandler := handlers.NewSlotHandler(schedulingEngine)
	reservationHandler := handlers.NewReservationHandler(schedulingEngine, reservationService)
	userStatsHandler := handlers.NewUserStatsHandler(adminService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListCompaniesHandler: companyHandler.ListCompaniesHandler,
		CreateCompanyHandler: companyHandler.CreateCompanyHandler,
		UpdateCompanyHandler: companyHandler.UpdateCompanyHandler,
		GetMyCompanyHandler:  companyHandler.GetMyCompanyHandler,

		GetAvailableSlotsHandler: slotHandler.GetAvailableSlotsHandler,

		CreateReservationHandler:       reservationHandler.CreateReservationHandler,
		ListMyReservationsHandler:      reservationHandler.ListMyReservationsHandler,
		ListCompanyReservationsHandler: reservationHandler.ListCompanyReservationsHandler,
		GetReservationHandler:          reservationHandler.GetReservationHandler,
		UpdateReservationHandler:       reservationHandler.UpdateReservationHandler,
		CancelReservationHandler:       reservationHandler.CancelReservationHandler,

		GetUserStatsHandler: userStatsHandler.GetUserStatsHandler,

		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
