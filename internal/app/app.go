package app

import (
	"fmt"

	"workhubb_backend/internal/apperrors"
	"workhubb_backend/internal/config"
	"workhubb_backend/internal/database"
	"workhubb_backend/internal/handlers"
	"workhubb_backend/internal/logger"
	"workhubb_backend/internal/middleware"
	"workhubb_backend/internal/repositories"
	"workhubb_backend/internal/routes"
	"workhubb_backend/internal/services"
	"workhubb_backend/internal/storage"
	"workhubb_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run wires the process: config, logger, storage adapter, router.
// Everything long-lived is created exactly once here and injected
// downward; handlers never construct their own connections.
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	apperrors.Debug = cfg.Server.Env != "production"

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	router := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the gin engine with all dependencies injected.
// Split from Run so tests can mount the full surface on httptest.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	store, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, db, store)
	appHandlers := initializeHandlers(serviceContainer, db)

	router := initializeGinRouter(cfg)
	routes.RegisterRoutes(router, appHandlers)

	return router
}

func initializeServices(cfg *config.Config, db *gorm.DB, store storage.Storage) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	experienceRepo := repositories.NewExperienceRepository(db)

	userService := services.NewUserService(userRepo)
	jobService := services.NewJobService(jobRepo, userRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobService)
	experienceService := services.NewExperienceService(experienceRepo)
	uploadService := services.NewUploadService(store, cfg)

	return &services.ServiceContainer{
		UserService:        userService,
		JobService:         jobService,
		ApplicationService: applicationService,
		ExperienceService:  experienceService,
		UploadService:      uploadService,
	}
}

func initializeHandlers(sc *services.ServiceContainer, db *gorm.DB) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		UserHandler:        handlers.NewUserHandler(baseHandler, sc.UserService),
		JobHandler:         handlers.NewJobHandler(baseHandler, sc.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, sc.ApplicationService),
		ExperienceHandler:  handlers.NewExperienceHandler(baseHandler, sc.ExperienceService),
		UploadHandler:      handlers.NewUploadHandler(baseHandler, sc.UploadService),
		HealthHandler:      handlers.NewHealthHandler(db),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
