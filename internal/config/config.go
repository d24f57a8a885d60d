package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/tropicaldog17/cardfolio/internal/db"
	"github.com/tropicaldog17/cardfolio/internal/models"
)

// Config is the process configuration assembled from the environment
type Config struct {
	Port               string
	LogEnv             string
	Database           *db.Config
	Rates              models.RateTable
	SeriesLookbackDays int
}

// Load reads an optional .env file then the environment
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{
		Port:               getEnv("SERVER_PORT", "8080"),
		LogEnv:             getEnv("LOG_ENV", os.Getenv("APP_ENV")),
		Database:           db.NewConfig(),
		Rates:              models.DefaultRates(),
		SeriesLookbackDays: 30,
	}

	if raw := os.Getenv("FX_RATES"); raw != "" {
		overrides, err := models.ParseRates(raw)
		if err != nil {
			return nil, fmt.Errorf("FX_RATES: %w", err)
		}
		cfg.Rates = cfg.Rates.Merge(overrides)
	}

	if raw := os.Getenv("SERIES_LOOKBACK_DAYS"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 1 {
			return nil, fmt.Errorf("SERIES_LOOKBACK_DAYS must be a positive integer, got %q", raw)
		}
		cfg.SeriesLookbackDays = days
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
