package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"triptailor/config"
	"triptailor/database"
	bookingRepoPkg "triptailor/database/repository/booking"
	catalogRepoPkg "triptailor/database/repository/catalog"
	engagementRepoPkg "triptailor/database/repository/engagement"
	paymentRepoPkg "triptailor/database/repository/payment"
	userRepoPkg "triptailor/database/repository/user"
	"triptailor/handlers"
	"triptailor/middleware"
	"triptailor/routes"
	"triptailor/services/booking"
	"triptailor/services/catalog"
	"triptailor/services/engagement"
	"triptailor/services/payment"
	"triptailor/services/stats"
	"triptailor/services/user"
	"triptailor/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to the document store: %v", err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			logger.Sugar().Errorf("main: failed to disconnect store client: %v", err)
		}
	}()
	db := database.DB(client)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	stripe.Key = config.AppConfig.StripeSecretKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	engagementRepo := engagementRepoPkg.NewMongoEngagementRepo(db)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(db)

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: catalogRepo}
	bookingService := &booking.DefaultBookingService{
		Repo:                bookingRepo,
		AllowStatusOverride: config.AppConfig.AllowStatusOverride,
	}
	engagementService := &engagement.DefaultEngagementService{Repo: engagementRepo}
	paymentService := &payment.DefaultPaymentService{Repo: paymentRepo}
	statsService := &stats.DefaultStatsService{
		Users:    userRepo,
		Catalog:  catalogRepo,
		Bookings: bookingRepo,
		Payments: paymentRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:       &handlers.AuthHandler{},
		User:       handlers.NewUserHandler(userService),
		Catalog:    handlers.NewCatalogHandler(catalogService),
		Booking:    handlers.NewBookingHandler(bookingService),
		Engagement: handlers.NewEngagementHandler(engagementService),
		Payment:    handlers.NewPaymentHandler(paymentService),
		Stats:      handlers.NewStatsHandler(statsService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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
