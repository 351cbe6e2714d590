// File: fairway/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"fairway/config"
	"fairway/cron"
	"fairway/database"
	bookingRepo "fairway/database/repository/booking"
	customerRepo "fairway/database/repository/customer"
	invoiceRepo "fairway/database/repository/invoice"
	scheduleRepo "fairway/database/repository/schedule"
	staffRepo "fairway/database/repository/staff"
	"fairway/handlers"
	"fairway/middleware"
	"fairway/routes"
	"fairway/services/availability"
	"fairway/services/booking"
	"fairway/services/invoice"
	"fairway/services/staff"
	"fairway/services/timeclock"
	"fairway/utils"
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

	// repositories.
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()
	custRepo := customerRepo.NewMongoCustomerRepo()
	stfRepo := staffRepo.NewMongoStaffRepo()
	invRepo := invoiceRepo.NewMongoInvoiceRepo()

	// services.
	availabilityService := &availability.DefaultService{
		ScheduleRepo: schedRepo,
		BookingRepo:  bkRepo,
		Cache:        utils.GetCacheClient(),
		Logger:       logger,
	}

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()

	bookingService := &booking.DefaultService{
		Repo:         bkRepo,
		Availability: availabilityService,
		Cache:        utils.GetCacheClient(),
		Reminders:    reminderClient,
		Logger:       logger,
	}
	staffService := &staff.DefaultService{Repo: stfRepo, Logger: logger}
	timeclockService := &timeclock.DefaultService{Repo: stfRepo, Logger: logger}
	invoiceService := &invoice.DefaultService{Repo: invRepo, Logger: logger}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := invoiceService.SeedDefaults(seedCtx); err != nil {
		logger.Sugar().Warnf("main: failed to seed default settings: %v", err)
	}
	seedCancel()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Schedule: handlers.NewScheduleHandler(availabilityService, schedRepo, utils.GetCacheClient()),
		Booking:  handlers.NewBookingHandler(bookingService),
		Customer: handlers.NewCustomerHandler(custRepo),
		Staff:    handlers.NewStaffHandler(staffService, timeclockService),
		Invoice:  handlers.NewInvoiceHandler(invoiceService, invRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

	cron.InitReminderWorker()
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
