package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/config"
	"portfolio/database"
	bookingRepo "portfolio/database/repository/booking"
	contactRepo "portfolio/database/repository/contact"
	"portfolio/handlers"
	"portfolio/middleware"
	"portfolio/routes"
	"portfolio/services/booking"
	"portfolio/services/calendar"
	"portfolio/services/contact"
	"portfolio/services/notification"
	"portfolio/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()

	database.InitDB()
	utils.StartHealthMonitor(database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	contacts := contactRepo.NewMongoContactRepo()

	// best-effort integrations.
	calendarSyncer := calendar.NewGoogleCalendarSyncer(cfg)
	mailer := notification.NewSMTPMailer(cfg)

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:       bookings,
		Calendar:   calendarSyncer,
		Mailer:     mailer,
		Window:     cfg.Window(),
		MeetingURL: cfg.MeetingURL,
	}
	contactService := &contact.DefaultContactService{
		Repo:   contacts,
		Mailer: mailer,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	contactHandler := handlers.NewContactHandler(contactService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetAvailability: bookingHandler.GetAvailability,
		BookSlot:        bookingHandler.BookSlot,
		SubmitContact:   contactHandler.SubmitContact,
		HealthCheck:     handlers.HealthCheck,
		ResumeLog:       handlers.ResumeLog,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
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
