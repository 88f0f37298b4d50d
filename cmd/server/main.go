package main

import (
	"context"
	"database/sql"
	"dhl-location-service/internal/adapters/dhl"
	"dhl-location-service/internal/adapters/keys"
	"dhl-location-service/internal/adapters/repositories"
	"dhl-location-service/internal/api"
	"dhl-location-service/internal/config"
	"dhl-location-service/internal/logger"
	"dhl-location-service/internal/platform/db"
	"dhl-location-service/internal/ports"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, DHL API) behind ports and starts the HTTP server.
func main() {
	foundEnv := config.LoadDotEnv()

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(logger.Options{
		Development: cfg.Development,
		Level:       cfg.LogLevel,
		FilePath:    cfg.LogFile,
	})
	if err != nil {
		log.Fatal(err)
	}

	if !foundEnv {
		zl.Info("no .env file found (using environment variables)")
	}

	err = run(cfg, zl)
	_ = zl.Sync()
	if err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Server, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}

	settings := repositories.NewSQLSettingsStore(conn)
	finder, err := dhl.NewLocationFinder(
		&http.Client{Transport: http.DefaultTransport},
		settings,
		keyRepository(cfg, conn),
		nil,
	)
	if err != nil {
		return err
	}

	router := api.NewRouter(finder, settings, api.Options{
		SearchTimeout:   cfg.SearchTimeout,
		SearchRateLimit: cfg.SearchRateLimit,
		SearchRateBurst: cfg.SearchRateBurst,
		AdminToken:      cfg.AdminToken,
	}, zl)

	// WriteTimeout leaves room for the search deadline on top of request handling.
	srv := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.SearchTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server listening",
			zap.String("addr", cfg.BindAddr),
			zap.String("key_source", cfg.KeySource),
			zap.Bool("admin_auth", cfg.AdminToken != ""),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func keyRepository(cfg *config.Server, conn *sql.DB) ports.KeyRepository {
	if cfg.KeySource == "env" {
		return keys.NewEnvKeyRepository(cfg.KeyEnvPrefix)
	}
	return repositories.NewSQLKeyRepository(conn)
}
