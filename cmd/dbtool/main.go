package main

import (
	"context"
	"dhl-location-service/internal/adapters/repositories"
	"dhl-location-service/internal/config"
	"dhl-location-service/internal/logger"
	"dhl-location-service/internal/platform/db"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// dbtool creates the schema and loads settings and API keys from a seed file.
func main() {
	foundEnv := config.LoadDotEnv()

	zl, err := logger.New(logger.Options{Development: true, Level: config.Get("LOG_LEVEL", "info")})
	if err != nil {
		log.Fatal(err)
	}

	if !foundEnv {
		zl.Info("no .env file found (using environment variables)")
	}

	err = run(zl)
	_ = zl.Sync()
	if err != nil {
		zl.Fatal("dbtool failed", zap.Error(err))
	}
}

func run(zl *zap.Logger) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		return errors.New("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	zl.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}

	seedPath := config.Get("SEED_PATH", "data/seeds/settings.json")
	zl.Info("seeding database", zap.String("path", seedPath))
	if err := repositories.SeedFromJSON(ctx, conn, seedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	zl.Info("seeding complete")
	return nil
}
