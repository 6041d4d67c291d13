package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labkeep-dev/labkeep/db"
	"github.com/labkeep-dev/labkeep/internal/config"
	"github.com/labkeep-dev/labkeep/internal/router"
	"github.com/labkeep-dev/labkeep/internal/store"
	"go.uber.org/zap"
)

func main() {
	// A .env file is optional; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	gormDB, err := db.Connect(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		users := store.NewUserStore(gormDB)
		if err := users.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			logger.Fatal("Failed to seed admin account", zap.Error(err))
		}
	}

	r, err := router.New(cfg, gormDB, logger)
	if err != nil {
		logger.Fatal("Failed to build router", zap.Error(err))
	}

	logger.Info("Starting LabKeep", zap.String("port", cfg.Port))

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
