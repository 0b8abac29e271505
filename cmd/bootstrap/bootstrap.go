package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicenter-portal/config"
	deliveryHttp "medicenter-portal/internal/delivery/http"
	"medicenter-portal/internal/delivery/http/handler"
	"medicenter-portal/internal/delivery/http/middleware"
	"medicenter-portal/internal/infrastructure/cache"
	"medicenter-portal/internal/repository"
	"medicenter-portal/internal/service"
	"medicenter-portal/internal/upstream"
	"medicenter-portal/internal/usecase"
	"medicenter-portal/pkg/jwt"
	"medicenter-portal/pkg/metrics"
	"medicenter-portal/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, redisClient *redis.Client) *http.Server {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize metrics
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	// Initialize upstream API client
	client := upstream.NewClient(cfg.Upstream, log, m)

	// Initialize token service
	tokenService := jwt.NewTokenService(cfg.Session)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(redisClient, cfg.Session.Expiry)
	draftRepo := repository.NewDraftRepository(redisClient, cfg.Booking.SnapshotTTL, cfg.Booking.SubmitLockTTL)

	// Initialize services
	prescriptionService := service.NewPrescriptionService()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, client, sessionRepo, tokenService)
	directoryUsecase := usecase.NewDirectoryUsecase(log, client, sessionRepo)
	availabilityUsecase := usecase.NewAvailabilityUsecase(log, client, sessionRepo, draftRepo, cfg.Booking.HorizonDays)
	bookingUsecase := usecase.NewBookingUsecase(log, client, sessionRepo, draftRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, client, client, sessionRepo, prescriptionService)
	scheduleUsecase := usecase.NewScheduleUsecase(log, client, sessionRepo)
	adminUsecase := usecase.NewAdminUsecase(log, client, sessionRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(directoryUsecase, availabilityUsecase, bookingUsecase, appointmentUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(appointmentUsecase, scheduleUsecase, customValidator)
	adminHandler := handler.NewAdminHandler(adminUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService, sessionRepo)
	corsMiddleware := middleware.NewCORSMiddleware()
	metricsMiddleware := middleware.NewMetricsMiddleware(m)

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, patientHandler, doctorHandler, adminHandler, authMiddleware, corsMiddleware, metricsMiddleware, registry)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (redis, etc.)
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
