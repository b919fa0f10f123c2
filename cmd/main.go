package main

import (
	"reservation-service/internal/handler"
	mid "reservation-service/internal/middleware"
	"reservation-service/internal/model"
	"reservation-service/internal/repository"
	"reservation-service/internal/service"
	"reservation-service/pkg/config"
	"reservation-service/pkg/database"
	"reservation-service/pkg/logger"
	"reservation-service/prometheus"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		// Just log a warning, don't fail if .env file is not found
		// This allows the service to run in environments where env vars are set differently
		// such as production environments with proper environment configuration
		// The fallback values will be used in case env vars are not set
	}

	// Load configuration
	appConfig, err := config.Load("reservation-service")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting reservation-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Run migrations
	err = database.MigrateModels(
		&model.Address{},
		&model.Property{},
		&model.Client{},
		&model.Reservation{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed")

	// Wire repositories, services and handlers
	db := database.GetDB()
	propertyRepo := repository.NewPropertyRepository(db)
	clientRepo := repository.NewClientRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	availabilityService := service.NewAvailabilityService(propertyRepo)
	propertyService := service.NewPropertyService(propertyRepo)
	reservationService := service.NewReservationService(reservationRepo, propertyRepo, clientRepo, availabilityService)

	propertyHandler := handler.NewPropertyHandler(propertyService, availabilityService)
	reservationHandler := handler.NewReservationHandler(reservationService)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Routes
	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Property API routes
	propertyAPI := e.Group("/api/properties")
	propertyAPI.POST("", propertyHandler.Create)
	propertyAPI.GET("", propertyHandler.List)
	propertyAPI.GET("/:id/availability", propertyHandler.CheckAvailability)

	// Reservation API routes
	reservationAPI := e.Group("/api/reservations")
	reservationAPI.POST("", reservationHandler.Create)
	reservationAPI.GET("", reservationHandler.List)
	reservationAPI.DELETE("/:id", reservationHandler.Cancel)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
