package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/tropicaldog17/cardfolio/docs"
	"github.com/tropicaldog17/cardfolio/internal/config"
	"github.com/tropicaldog17/cardfolio/internal/db"
	"github.com/tropicaldog17/cardfolio/internal/handlers"
	"github.com/tropicaldog17/cardfolio/internal/logger"
	"github.com/tropicaldog17/cardfolio/internal/repositories"
	"github.com/tropicaldog17/cardfolio/internal/services"
)

// @title Cardfolio API
// @version 1.0
// @description Collectible card portfolio tracking and valuation.
// @host localhost:8080
// @BasePath /api
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

	// Database connection
	database, err := db.Connect(cfg.Database)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		zl.Fatal("failed to migrate schema", zap.Error(err))
	}
	zl.Info("database connection established", zap.String("driver", cfg.Database.Driver))

	// Repositories
	catalogRepo := repositories.NewCatalogRepository(database)
	holdingRepo := repositories.NewHoldingRepository(database)
	transactionRepo := repositories.NewTransactionRepository(database)
	snapshotRepo := repositories.NewPriceSnapshotRepository(database)

	// Services
	catalogService := services.NewCatalogService(catalogRepo)
	holdingService := services.NewHoldingService(holdingRepo, catalogRepo, zl)
	transactionService := services.NewTransactionService(transactionRepo, holdingRepo)
	priceService := services.NewPriceService(snapshotRepo, catalogRepo)
	simulator := services.NewPriceSimulator(catalogRepo, snapshotRepo, cfg.Rates, time.Now().UnixNano(), zl)
	portfolioService := services.NewPortfolioService(holdingRepo, snapshotRepo, cfg.Rates, zl)
	exportService := services.NewExportService(catalogRepo, holdingRepo, transactionRepo)

	router := handlers.NewRouter(&handlers.Handlers{
		Catalog:      handlers.NewCatalogHandler(catalogService, zl),
		Holdings:     handlers.NewHoldingHandler(holdingService, zl),
		Transactions: handlers.NewTransactionHandler(transactionService, zl),
		Prices:       handlers.NewPriceHandler(priceService, simulator, zl),
		Portfolio:    handlers.NewPortfolioHandler(portfolioService, cfg.SeriesLookbackDays, zl),
		Export:       handlers.NewExportHandler(exportService, zl),
	}, database.Health, zl)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
	zl.Info("server stopped")
}
