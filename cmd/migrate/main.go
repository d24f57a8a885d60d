package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/tropicaldog17/cardfolio/internal/config"
	"github.com/tropicaldog17/cardfolio/internal/db"
	"github.com/tropicaldog17/cardfolio/internal/logger"
)

// migrate brings the configured database schema up to date and exits.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	zl, err := logger.New(cfg.LogEnv)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer zl.Sync()

	database, err := db.Connect(cfg.Database)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	zl.Info("running migrations", zap.String("driver", cfg.Database.Driver))
	if err := database.Migrate(); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}
	zl.Info("all migrations completed successfully")
}
