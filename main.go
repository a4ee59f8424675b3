package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shareyourspace/config"
	"shareyourspace/handlers"
	"shareyourspace/middleware"
	"shareyourspace/routes"
	"shareyourspace/services/booking"
	"shareyourspace/services/catalog"
	"shareyourspace/services/pricing"
	"shareyourspace/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// The catalog is built once at startup and read-only afterwards.
	listingCatalog := catalog.NewInMemoryCatalog(catalog.DefaultSeeds(), config.AppConfig.CatalogSeed)

	// Pricing engines per booking surface.
	rangeEngine := pricing.NewDefaultEngine(config.AppConfig.ServiceFeeFlexible)
	widgetEngine := pricing.NewDefaultEngine(config.AppConfig.ServiceFeeWidget)

	bookingService := &booking.DefaultSessionService{
		Catalog:      listingCatalog,
		RangeEngine:  rangeEngine,
		WidgetEngine: widgetEngine,
		Cache:        utils.GetSessionCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Search:  handlers.NewSearchHandler(listingCatalog),
		Listing: handlers.NewListingHandler(listingCatalog),
		Quote:   handlers.NewQuoteHandler(listingCatalog, rangeEngine, widgetEngine),
		Booking: handlers.NewBookingHandler(bookingService, logger),
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
