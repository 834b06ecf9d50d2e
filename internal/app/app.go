package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"skillgate_backend/database"
	"skillgate_backend/internal/auth"
	"skillgate_backend/internal/config"
	"skillgate_backend/internal/email"
	"skillgate_backend/internal/handlers"
	"skillgate_backend/internal/logger"
	"skillgate_backend/internal/middleware"
	"skillgate_backend/internal/models"
	"skillgate_backend/internal/repositories"
	"skillgate_backend/internal/routes"
	"skillgate_backend/internal/services"
	"skillgate_backend/internal/validator"
	"skillgate_backend/internal/workers"
)

func Run() {
	// .env опционален: в контейнере конфиг приходит из окружения
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// Без админа платформа неуправляема - сервер не стартуем
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	// Фоновое закрытие просроченных drives
	driveWorker := workers.NewDriveWorker(repositories.NewDriveRepository(gormDB))
	driveWorker.Start(context.Background())

	// Фоновая чистка истекших refresh-токенов
	tokenWorker := workers.NewTokenWorker(repositories.NewRefreshTokenRepository(gormDB))
	tokenWorker.Start(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg, gormDB)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter()

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(cfg.Email)
		logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("SMTP is not configured. Using MOCK email provider.")
		emailProvider = &MockEmailProvider{}
	}

	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	driveRepo := repositories.NewDriveRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)

	// --- Инициализация сервисов ---
	authService := services.NewAuthService(userRepo, refreshTokenRepo)
	userService := services.NewUserService(userRepo)
	driveService := services.NewDriveService(driveRepo, userRepo, applicationRepo)
	applicationService := services.NewApplicationService(applicationRepo, driveRepo, userRepo, emailProvider)
	adminService := services.NewAdminService(userRepo, refreshTokenRepo, emailProvider)

	return &services.ServiceContainer{
		AuthService:        authService,
		UserService:        userService,
		DriveService:       driveService,
		ApplicationService: applicationService,
		AdminService:       adminService,
		EmailService:       emailProvider,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, services.AuthService, services.UserService),
		DriveHandler:       handlers.NewDriveHandler(baseHandler, services.DriveService, services.ApplicationService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, services.ApplicationService),
		AdminHandler:       handlers.NewAdminHandler(baseHandler, services.AdminService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin создает первого админа, если его еще нет.
// Email и пароль приходят из конфигурации, в коде ничего не захардкожено.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdmin.Email
	adminPassword := cfg.FirstAdmin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
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

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Name:         "Platform Admin",
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusApproved,
	}

	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("✅ Successfully created first admin user", "email", adminEmail)

	return tx.Commit().Error
}
