// File: bookbarn/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookbarn/config"
	"bookbarn/cron"
	"bookbarn/database"
	bookingRepoPkg "bookbarn/database/repository/booking"
	catalogRepoPkg "bookbarn/database/repository/catalog"
	userRepoPkg "bookbarn/database/repository/user"
	"bookbarn/handlers"
	"bookbarn/middleware"
	"bookbarn/routes"
	"bookbarn/services/booking"
	"bookbarn/services/catalog"
	"bookbarn/services/user"
	"bookbarn/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRoleCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	db := database.MongoClient.Database(config.AppConfig.DatabaseName)

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo(db)

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	bookingService := &booking.DefaultBookingService{Repo: bookingRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: catalogRepo}
	paymentCoordinator := booking.NewPaymentCoordinator(logger, bookingRepo)

	// handlers.
	userHandler := handlers.NewUserHandler(userService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	paymentHandler := handlers.NewPaymentHandler(paymentCoordinator, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth / users.
		JWTHandler:        userHandler.JWTHandler,
		CreateUserHandler: userHandler.CreateUserHandler,
		Me:                userHandler.MeHandler,
		GetAllUsers:       userHandler.GetAllUsersHandler,
		IsAdminHandler:    userHandler.IsAdminHandler,
		IsSellerHandler:   userHandler.IsSellerHandler,
		IsVerifiedHandler: userHandler.IsVerifiedHandler,
		VerifyUserHandler: userHandler.VerifyUserHandler,
		DeleteUserHandler: userHandler.DeleteUserHandler,

		// Catalog.
		GetCategories:       catalogHandler.GetCategoriesHandler,
		GetCategory:         catalogHandler.GetCategoryHandler,
		CreateProduct:       catalogHandler.CreateProductHandler,
		GetProductsByTitle:  catalogHandler.GetProductsByTitleHandler,
		GetCategoryProducts: catalogHandler.GetCategoryProductsHandler,
		MyProducts:          catalogHandler.MyProductsHandler,
		GetAdvertised:       catalogHandler.GetAdvertisedHandler,
		AdvertiseProduct:    catalogHandler.AdvertiseProductHandler,
		DeleteProduct:       catalogHandler.DeleteProductHandler,
		CreateReview:        catalogHandler.CreateReviewHandler,
		GetReviews:          catalogHandler.GetReviewsHandler,

		// Bookings.
		CreateBooking:  bookingHandler.CreateBookingHandler,
		GetBookings:    bookingHandler.GetBookingsHandler,
		GetBookingByID: bookingHandler.GetBookingByIDHandler,
		ReportBooking:  bookingHandler.ReportBookingHandler,
		GetReported:    bookingHandler.GetReportedHandler,
		DeleteBooking:  bookingHandler.DeleteBookingHandler,

		// Payments.
		CreatePaymentIntent: paymentHandler.CreatePaymentIntentHandler,
		RecordPayment:       paymentHandler.RecordPaymentHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background moderation digest and health monitoring.
	cron.InitModerationWorker(bookingService, logger)
	utils.StartHealthMonitor([]*redis.Client{utils.RoleCacheClient}, database.MongoClient)

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
	database.CloseDB(ctx)

	logger.Sugar().Info("main: server stopped gracefully")
}
