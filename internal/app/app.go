package app

import (
	"errors"
	"fmt"

	"codelance_backend/database"
	"codelance_backend/internal/config"
	"codelance_backend/internal/handlers"
	"codelance_backend/internal/logger"
	"codelance_backend/internal/middleware"
	"codelance_backend/internal/models"
	"codelance_backend/internal/repositories"
	"codelance_backend/internal/routes"
	"codelance_backend/internal/services"
	"codelance_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers into a ready
// gin engine. Tests call it directly with their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	profileRepo := repositories.NewProfileRepository()

	serviceContainer := initializeServices()
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, profileRepo)

	return ginRouter
}

func initializeServices() *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	profileRepo := repositories.NewProfileRepository()
	projectRepo := repositories.NewProjectRepository()
	taskRepo := repositories.NewTaskRepository()
	applicationRepo := repositories.NewApplicationRepository()
	messageRepo := repositories.NewMessageRepository()
	paymentRepo := repositories.NewPaymentRepository()

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, profileRepo, refreshTokenRepo),
		UserService:        services.NewUserService(userRepo, profileRepo),
		ProjectService:     services.NewProjectService(projectRepo, taskRepo),
		TaskService:        services.NewTaskService(taskRepo, projectRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, projectRepo, taskRepo),
		MessageService:     services.NewMessageService(messageRepo, userRepo),
		PaymentService:     services.NewPaymentService(paymentRepo, userRepo, projectRepo),
		AdminService:       services.NewAdminService(profileRepo, projectRepo),
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		Auth:        handlers.NewAuthHandler(baseHandler, sc.AuthService),
		User:        handlers.NewUserHandler(baseHandler, sc.UserService),
		Project:     handlers.NewProjectHandler(baseHandler, sc.ProjectService),
		Task:        handlers.NewTaskHandler(baseHandler, sc.TaskService),
		Application: handlers.NewApplicationHandler(baseHandler, sc.ApplicationService),
		Message:     handlers.NewMessageHandler(baseHandler, sc.MessageService),
		Payment:     handlers.NewPaymentHandler(baseHandler, sc.PaymentService),
		Admin:       handlers.NewAdminHandler(baseHandler, sc.AdminService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin bootstraps the admin account on an empty database so
// the approval and moderation endpoints are reachable from day one.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminUsername := cfg.FirstAdminUsername
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}
	if adminUsername == "" {
		adminUsername = "admin"
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var adminUser models.User
	result := tx.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		tx.Rollback()
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
	}
	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	adminProfile := &models.Profile{
		UserID:     newAdmin.ID,
		Role:       models.UserRoleAdmin,
		IsApproved: true,
	}
	if err := tx.Create(adminProfile).Error; err != nil {
		return fmt.Errorf("failed to create admin profile: %w", err)
	}

	logger.Info("Successfully created first admin user and profile", "email", adminEmail)
	return tx.Commit().Error
}
