package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wirehaul/config"
	"wirehaul/cron"
	"wirehaul/database"
	driverRepoPkg "wirehaul/database/repository/driver"
	historyRepoPkg "wirehaul/database/repository/history"
	notificationRepoPkg "wirehaul/database/repository/notification"
	tripRepoPkg "wirehaul/database/repository/trip"
	userRepoPkg "wirehaul/database/repository/user"
	"wirehaul/handlers"
	"wirehaul/middleware"
	"wirehaul/routes"
	driverSvc "wirehaul/services/driver"
	"wirehaul/services/geocode"
	"wirehaul/services/mail"
	"wirehaul/services/notification"
	"wirehaul/services/trip"
	"wirehaul/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitGeoCache()

	// Firebase is optional in development; without credentials the service
	// runs with durable notifications only.
	var broadcaster notification.Broadcaster
	if config.AppConfig.FirebaseCredentialsFile != "" {
		utils.FirebaseInit()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	tripRepo := tripRepoPkg.NewMongoTripRepo()
	historyRepo := historyRepoPkg.NewMongoHistoryRepo()
	driverRepo := driverRepoPkg.NewMongoDriverRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// mail: requests enqueue, the cron worker delivers.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})
	defer asynqClient.Close()
	mailer := mail.NewQueueMailer(asynqClient)
	sender := mail.NewAPIMailer(config.AppConfig.MailAPIURL, logger)
	cron.InitMailWorker(sender)

	// services.
	if utils.FCMClient != nil {
		broadcaster = notification.NewFCMBroadcaster(utils.FCMClient, userRepo)
	}
	notificationService, err := notification.NewDefaultNotificationService(notificationRepo, userRepo, broadcaster, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	geocoder := geocode.NewNominatimService(config.AppConfig.GeocodeBaseURL, utils.GetGeoCacheClient(), logger)

	tripService := &trip.DefaultTripService{
		Trips:    tripRepo,
		History:  historyRepo,
		Drivers:  driverRepo,
		Users:    userRepo,
		Mailer:   mailer,
		Notifier: notificationService,
		Geocoder: geocoder,
		Logger:   logger,
		MinPrice: config.AppConfig.MinTripPrice,
	}

	driverService, err := driverSvc.NewDefaultDriverService(driverRepo, userRepo, notificationService, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize driver service: %v", err)
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(tripService, notificationService, driverService)
	routes.RegisterRoutes(router, handlerBundle, userRepo)

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
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
