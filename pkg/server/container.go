package server

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"inventory-api/internal/config"
	"inventory-api/internal/database"
	"inventory-api/internal/middleware"
	"inventory-api/internal/repositories"
	"inventory-api/internal/repositories/sqlite"
	"inventory-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	AuthService  services.AuthService
	OrderService services.OrderService
	TokenService *middleware.TokenService
	Logger       *logrus.Logger

	conn *database.ConnectionManager
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := logrus.New()
	if cfg.Environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	conn := database.NewConnectionManager(&database.ConnectionConfig{
		DatabasePath:    cfg.Database.Path,
		MigrationsPath:  cfg.Database.MigrationsPath,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Hour,
		Logger:          logger,
	})

	if err := conn.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := conn.GetDB()
	repos := &repositories.RepositoryContainer{
		UserRepo:  sqlite.NewUserRepository(db, logger),
		OrderRepo: sqlite.NewOrderRepository(db, logger),
	}

	tokenService := middleware.NewTokenService(&middleware.TokenConfig{
		Secret:        cfg.JWT.Secret,
		TokenDuration: time.Duration(cfg.JWT.ExpiryHours) * time.Hour,
	})

	hasher := services.NewBcryptHasher(cfg.Bcrypt.Cost)

	container := &Container{
		Config:       cfg,
		AuthService:  services.NewAuthService(repos.UserRepo, hasher, tokenService, logger),
		OrderService: services.NewOrderService(repos.OrderRepo, logger),
		TokenService: tokenService,
		Logger:       logger,
		conn:         conn,
	}

	return container, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
