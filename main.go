// File: salesbot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salesbot/catalog"
	"salesbot/config"
	"salesbot/database"
	bookingsRepo "salesbot/database/repository/bookings"
	"salesbot/handlers"
	"salesbot/middleware"
	"salesbot/routes"
	"salesbot/services/billing"
	"salesbot/services/booking"
	"salesbot/services/chat"
	ai "salesbot/services/intelligence"
	"salesbot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.GeminiAPIKey == "" {
		logger.Sugar().Fatal("main: GEMINI_API_KEY is not set")
	}

	// Catalog is loaded once and shared read-only.
	cat := catalog.Default()

	// Booking store backend.
	var repo bookingsRepo.Repository
	switch config.AppConfig.BookingStore {
	case "mongo":
		database.InitDB()
		repo = bookingsRepo.NewMongoRepo()
	case "redis":
		repo = bookingsRepo.NewRedisRepo(utils.GetBookingStoreClient())
	default:
		repo = bookingsRepo.NewMemoryRepo()
	}
	logger.Sugar().Infof("main: booking store backend: %s", config.AppConfig.BookingStore)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	geminiClient := ai.NewGeminiClient(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
		time.Duration(config.AppConfig.GeminiConnectTimeoutMs)*time.Millisecond,
		time.Duration(config.AppConfig.GeminiReadTimeoutMs)*time.Millisecond,
		logger,
	)
	schedulingService := booking.DefaultSchedulingService{}
	bookingService := &booking.DefaultBookingService{Repo: repo}
	billingService := &billing.DefaultBillingService{Catalog: cat}
	chatService := chat.NewDefaultChatService(cat, geminiClient, schedulingService, logger)

	chatHandler := handlers.NewChatHandler(chatService, logger)
	quoteHandler := handlers.NewQuoteHandler(billingService, logger)
	catalogHandler := handlers.NewCatalogHandler(cat)
	bookingHandler := handlers.NewBookingHandler(bookingService, schedulingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Chat:          chatHandler.HandleChat,
		Quote:         quoteHandler.HandleQuote,
		ListServices:  catalogHandler.ListServices,
		CreateBooking: bookingHandler.CreateBooking,
		GetBooking:    bookingHandler.GetBooking,
		SuggestSlot:   bookingHandler.SuggestSlot,
	}

	// Register routes with the assembled handler bundle.
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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
