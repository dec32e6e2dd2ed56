package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staycation/config"
	"staycation/cron"
	"staycation/database"
	"staycation/database/repository"
	"staycation/handlers"
	"staycation/middleware"
	"staycation/routes"
	"staycation/services/booking"
	"staycation/services/listing"
	"staycation/services/tasks"
	"staycation/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	bookingCache := utils.GetBookingCacheClient()

	rootCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(rootCtx, bookingCache, database.MongoClient, time.Minute)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin, logger))

	rules := config.AppConfig.Rules()

	// repositories.
	listingRepo := repository.NewMongoListingRepo()
	reservationRepo := repository.NewMongoReservationRepo()
	userRepo := repository.NewMongoUserRepo()

	// services.
	reservationService := &booking.DefaultReservationService{
		Listings:     listingRepo,
		Reservations: reservationRepo,
		Rules:        rules,
		Logger:       logger,
	}

	var queue *asynq.Client
	var worker *asynq.Server
	if config.AppConfig.RemindersEnabled {
		queue = asynq.NewClient(utils.ReminderQueueOpt())
		lead := time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour
		reservationService.Reminders = tasks.NewReminderScheduler(queue, lead)
		worker = cron.InitReminderWorker(cron.LogNotifier{Logger: logger}, logger)
	}

	sessionService := &booking.DefaultBookingSessionService{
		Store:        booking.NewRedisFlowStore(bookingCache),
		Listings:     listingRepo,
		Reservations: reservationRepo,
		Creator:      reservationService,
		Rules:        rules,
	}

	listingService := &listing.DefaultListingService{
		Listings:     listingRepo,
		Reservations: reservationRepo,
		Rules:        rules,
		Now:          time.Now,
	}

	listingHandler := handlers.NewListingHandler(listingService, logger)
	reservationHandler := handlers.NewReservationHandler(reservationService, logger)
	bookingHandler := handlers.NewBookingHandler(sessionService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		ListListings:    listingHandler.ListListings,
		GetListing:      listingHandler.GetListing,
		GetAvailability: listingHandler.GetAvailability,
		GetQuote:        listingHandler.GetQuote,

		CreateReservation: reservationHandler.CreateReservation,
		ListTrips:         reservationHandler.ListTrips,

		InitiateSession: bookingHandler.InitiateSession,
		UpdateSession:   bookingHandler.UpdateSession,
		ConfirmSession:  bookingHandler.ConfirmSession,
		CancelSession:   bookingHandler.CancelSession,

		Health: handlers.HealthHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if worker != nil {
		worker.Shutdown()
	}
	if queue != nil {
		if err := queue.Close(); err != nil {
			logger.Sugar().Warnf("main: failed to close reminder queue: %v", err)
		}
	}
	if err := bookingCache.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close redis: %v", err)
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect mongo: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
