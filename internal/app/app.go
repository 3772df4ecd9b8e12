package app

import (
	"fmt"
	"strings"

	"jobboard_backend/database"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Run boots the whole service: config, logger, database, migrations,
// admin seed, router. Blocks serving HTTP.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env == "development")

	db, err := OpenDatabase(cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	userRepo := repositories.NewUserRepository(db)
	if err := SeedFirstAdmin(userRepo, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	// Startup housekeeping; stale sessions accumulate otherwise.
	if err := userRepo.CleanExpiredRefreshTokens(); err != nil {
		logger.Warn("failed to clean expired refresh tokens", "error", err)
	}

	router, err := SetupRouter(db, cfg)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// OpenDatabase connects to Postgres with GORM logging tuned to the
// environment.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.Server.Env == "development" {
		level = gormlogger.Info
	}

	return gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
		// Surfaces gorm.ErrDuplicatedKey on unique-index violations.
		TranslateError: true,
	})
}

// SetupRouter builds the gin engine with all middleware, services and
// routes wired. Shared by main and the test harness.
func SetupRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())

	st, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	svc := services.NewServiceContainer(
		repositories.NewUserRepository(db),
		repositories.NewJobRepository(db),
		repositories.NewApplicationRepository(db),
		st,
		newEmailProvider(cfg),
		cfg,
	)

	appHandlers := handlers.NewAppHandlers(svc, cfg)
	routes.RegisterRoutes(router, appHandlers, cfg)

	// Local storage serves its files straight from disk. Skipped when
	// base_url points at an external host.
	if cfg.Storage.Type == "local" && strings.HasPrefix(cfg.Storage.BaseURL, "/") {
		router.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "status": "ok"})
	})

	return router, nil
}

// SeedFirstAdmin creates the configured admin account if no admin exists
// yet. Admins cannot self-register.
func SeedFirstAdmin(userRepo repositories.UserRepository, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return nil
	}

	if _, err := userRepo.FindByEmail(cfg.Admin.Email); err == nil {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Administrator"
	}

	admin := &models.User{
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Name:         name,
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}

	logger.Info("admin account seeded", "email", cfg.Admin.Email)
	return nil
}

func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		return email.NewMockProvider()
	}
	return email.NewSMTPProvider(cfg)
}
