package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthconnect/config"
	deliveryHttp "healthconnect/internal/delivery/http"
	"healthconnect/internal/delivery/http/handler"
	"healthconnect/internal/delivery/http/middleware"
	"healthconnect/internal/infrastructure/cache"
	"healthconnect/internal/infrastructure/database"
	"healthconnect/internal/infrastructure/storage"
	"healthconnect/internal/repository"
	"healthconnect/internal/service"
	"healthconnect/internal/usecase"
	"healthconnect/pkg/jwt"
	"healthconnect/pkg/validator"

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

	// Apply pending schema migrations before opening the pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database migrations applied")

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

	// Initialize file storage
	fileStore, err := storage.NewLocalFileStore(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, fileStore)
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
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, fileStore storage.FileStore) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	hospitalRepo := repository.NewHospitalRepository()
	apptRepo := repository.NewAppointmentRepository()
	recordRepo := repository.NewMedicalRecordRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	trackingRepo := repository.NewHealthTrackingRepository()
	alertRepo := repository.NewAlertRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditRepo)
	alertStream := service.NewAlertStream(redisClient, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient, auditService)
	hospitalUsecase := usecase.NewHospitalUsecase(db, log, hospitalRepo, userRepo)
	apptUsecase := usecase.NewAppointmentUsecase(db, log, apptRepo, userRepo, hospitalRepo, alertRepo, alertStream, auditService)
	recordUsecase := usecase.NewMedicalRecordUsecase(db, log, recordRepo, userRepo, apptRepo, fileStore, auditService)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, userRepo, apptRepo, fileStore, auditService)
	trackingUsecase := usecase.NewHealthTrackingUsecase(db, log, trackingRepo, alertRepo, alertStream, auditService)
	alertUsecase := usecase.NewAlertUsecase(db, log, alertRepo, redisClient, alertStream, auditService)
	adminUsecase := usecase.NewAdminUsecase(db, log, userRepo, hospitalRepo, apptRepo, auditRepo, auditService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	hospitalHandler := handler.NewHospitalHandler(hospitalUsecase)
	apptHandler := handler.NewAppointmentHandler(apptUsecase, customValidator)
	recordHandler := handler.NewMedicalRecordHandler(recordUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	trackingHandler := handler.NewHealthTrackingHandler(trackingUsecase, customValidator)
	alertHandler := handler.NewAlertHandler(alertUsecase)
	adminHandler := handler.NewAdminHandler(adminUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		hospitalHandler,
		apptHandler,
		recordHandler,
		prescriptionHandler,
		trackingHandler,
		alertHandler,
		adminHandler,
		authMiddleware,
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
