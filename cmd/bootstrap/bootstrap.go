package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-directory-api/config"
	deliveryHttp "health-directory-api/internal/delivery/http"
	"health-directory-api/internal/delivery/http/handler"
	"health-directory-api/internal/delivery/http/middleware"
	"health-directory-api/internal/infrastructure/cache"
	"health-directory-api/internal/infrastructure/database"
	"health-directory-api/internal/repository"
	"health-directory-api/internal/service"
	"health-directory-api/internal/usecase"
	"health-directory-api/pkg/jwt"
	"health-directory-api/pkg/validator"

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

	// Apply pending schema migrations
	if err := database.RunMigrations(db, cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

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
	clinicRepo := repository.NewClinicRepository()
	professionalRepo := repository.NewProfessionalRepository()
	specialtyRepo := repository.NewSpecialtyRepository()
	healthPlanRepo := repository.NewHealthPlanRepository()
	newsRepo := repository.NewNewsRepository()
	partnerRepo := repository.NewPartnerRepository()
	staffRepo := repository.NewClinicProfessionalRepository()

	// Initialize services
	storageService := service.NewStorageService(log, cfg.Storage)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient)
	clinicUsecase := usecase.NewClinicUsecase(db, log, clinicRepo, staffRepo)
	professionalUsecase := usecase.NewProfessionalUsecase(db, log, professionalRepo, staffRepo)
	specialtyUsecase := usecase.NewSpecialtyUsecase(db, log, specialtyRepo, professionalRepo)
	healthPlanUsecase := usecase.NewHealthPlanUsecase(db, log, healthPlanRepo)
	newsUsecase := usecase.NewNewsUsecase(db, log, newsRepo)
	partnerUsecase := usecase.NewPartnerUsecase(db, log, partnerRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	clinicHandler := handler.NewClinicHandler(clinicUsecase, customValidator)
	professionalHandler := handler.NewProfessionalHandler(professionalUsecase, customValidator)
	specialtyHandler := handler.NewSpecialtyHandler(specialtyUsecase, customValidator)
	healthPlanHandler := handler.NewHealthPlanHandler(healthPlanUsecase, customValidator)
	newsHandler := handler.NewNewsHandler(newsUsecase, customValidator)
	partnerHandler := handler.NewPartnerHandler(partnerUsecase, customValidator)
	uploadHandler := handler.NewUploadHandler(storageService, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		clinicHandler,
		professionalHandler,
		specialtyHandler,
		healthPlanHandler,
		newsHandler,
		partnerHandler,
		uploadHandler,
		authMiddleware,
		corsMiddleware,
		cfg.Storage.RootDir,
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
