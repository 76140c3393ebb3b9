// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"

	appInventory "github.com/larderly/v2/internal/application/inventory"
	appMealplan "github.com/larderly/v2/internal/application/mealplan"
	appRecipe "github.com/larderly/v2/internal/application/recipe"
	appShopping "github.com/larderly/v2/internal/application/shopping"
	"github.com/larderly/v2/internal/infrastructure/config"
	gormRepo "github.com/larderly/v2/internal/infrastructure/persistence/gorm"
	"github.com/larderly/v2/internal/infrastructure/persistence/memory"
	"github.com/larderly/v2/internal/infrastructure/persistence/postgres"
	"github.com/larderly/v2/internal/infrastructure/persistence/redis"
	"github.com/larderly/v2/internal/infrastructure/persistence/sqlite"
	"github.com/larderly/v2/internal/ports/inbound"
	"github.com/larderly/v2/internal/ports/outbound"
	"github.com/larderly/v2/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	SessionModule,
	RepositoryModule,
	ServiceModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
	// Provide sugared logger
	func(log *zap.Logger) *zap.SugaredLogger {
		return log.Sugar()
	},
)

// DatabaseModule provides the database connection for the configured driver
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		if cfg.Database.Driver == "postgres" {
			cm, err := postgres.NewConnectionManager(cfg, log)
			if err != nil {
				return nil, fmt.Errorf("failed to setup PostgreSQL database: %w", err)
			}
			return cm.GetDB(), nil
		}

		logLevel := gormLogger.Silent
		if cfg.App.Debug {
			logLevel = gormLogger.Info
		}

		db, err := sqlite.SetupDatabase(cfg.Database.Path, logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
		}

		if cfg.Database.Seed {
			if err := sqlite.SeedDatabase(db); err != nil {
				log.Warn("Failed to seed database", zap.Error(err))
			}
		}

		log.Info("Connected to SQLite database",
			zap.String("path", cfg.Database.Path),
			zap.Bool("in_memory", cfg.Database.Path == ""),
		)

		return db, nil
	},
)

// SessionModule provides the session store. Redis when enabled, in-process
// memory otherwise.
var SessionModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.SessionStore, error) {
		if cfg.Redis.Enabled {
			return redis.NewSessionStore(cfg, log)
		}
		log.Info("Using in-memory session store")
		return memory.NewSessionStore(), nil
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewInventoryRepository,
	gormRepo.NewRecipeRepository,
	gormRepo.NewMealPlanRepository,
	gormRepo.NewShoppingListRepository,
	gormRepo.NewTransactionManager,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	appInventory.NewService,

	func(
		recipeRepo outbound.RecipeRepository,
		inventoryRepo outbound.InventoryRepository,
		mealPlanRepo outbound.MealPlanRepository,
		sessions outbound.SessionStore,
		tx outbound.TransactionManager,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.RecipeService {
		return appRecipe.NewService(recipeRepo, inventoryRepo, mealPlanRepo, sessions, tx, cfg.Session.TTL, log)
	},

	appMealplan.NewService,
	appShopping.NewService,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Larderly engine",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Larderly engine")

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			// Flush logs
			_ = log.Sync()

			return nil
		},
	})
}
