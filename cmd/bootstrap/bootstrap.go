package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifelink-backend/config"
	deliveryHttp "lifelink-backend/internal/delivery/http"
	"lifelink-backend/internal/delivery/http/handler"
	"lifelink-backend/internal/delivery/http/middleware"
	"lifelink-backend/internal/infrastructure/cache"
	"lifelink-backend/internal/infrastructure/database"
	"lifelink-backend/internal/repository"
	"lifelink-backend/internal/service"
	"lifelink-backend/internal/usecase"
	"lifelink-backend/pkg/jwt"
	"lifelink-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
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

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
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
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewProfileRepository()
	hospitalRepo := repository.NewHospitalRepository()
	bloodRequestRepo := repository.NewBloodRequestRepository()
	donationRepo := repository.NewDonationRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	notificationStore := service.NewNotificationStore(redisClient, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, profileRepo, jwtService, redisClient)
	profileUsecase := usecase.NewProfileUsecase(db, log, userRepo, profileRepo, hospitalRepo, auditService)
	hospitalUsecase := usecase.NewHospitalUsecase(db, log, userRepo, hospitalRepo, auditService)
	bloodRequestUsecase := usecase.NewBloodRequestUsecase(db, log, userRepo, profileRepo, hospitalRepo, bloodRequestRepo, auditService)
	donationUsecase := usecase.NewDonationUsecase(db, log, userRepo, profileRepo, donationRepo, bloodRequestRepo, auditService)
	donorUsecase := usecase.NewDonorUsecase(db, log, profileRepo, bloodRequestRepo, notificationStore)
	notificationUsecase := usecase.NewNotificationUsecase(log, notificationStore)
	analyticsUsecase := usecase.NewAnalyticsUsecase(db, log, userRepo, profileRepo, hospitalRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	hospitalHandler := handler.NewHospitalHandler(hospitalUsecase, customValidator)
	bloodRequestHandler := handler.NewBloodRequestHandler(bloodRequestUsecase, customValidator)
	donationHandler := handler.NewDonationHandler(donationUsecase, customValidator)
	donorHandler := handler.NewDonorHandler(donorUsecase, customValidator)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimit)
	metricsMiddleware := middleware.NewMetricsMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		profileHandler,
		hospitalHandler,
		bloodRequestHandler,
		donationHandler,
		donorHandler,
		notificationHandler,
		analyticsHandler,
		authMiddleware,
		corsMiddleware,
		rateLimitMiddleware,
		metricsMiddleware,
	)
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

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
