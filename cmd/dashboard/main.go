package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/straye-as/sales-dashboard/internal/auth"
	"github.com/straye-as/sales-dashboard/internal/config"
	"github.com/straye-as/sales-dashboard/internal/dashboard"
	"github.com/straye-as/sales-dashboard/internal/dashboard/gateway"
	"github.com/straye-as/sales-dashboard/internal/dashboard/web"
	"github.com/straye-as/sales-dashboard/internal/logger"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App, "dashboard")
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	log.Info("Starting dashboard",
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.Dashboard.Port),
		zap.String("api", cfg.Dashboard.APIBaseURL),
	)

	client := gateway.NewClient(&cfg.Dashboard, log)
	if cfg.Dashboard.APIToken == "" && cfg.Auth.Enabled && cfg.Auth.JWTSecret != "" {
		// Same secret as the API: mint our own token, renewed before expiry
		tokens := auth.NewTokenManager(&cfg.Auth)
		expiresAt, err := client.SetTokenIssuer(func() (string, time.Time, error) {
			return tokens.Issue("dashboard")
		})
		if err != nil {
			return fmt.Errorf("failed to issue API token: %w", err)
		}
		log.Info("Issued API token", zap.Time("expires_at", expiresAt))
	}

	app := dashboard.New(gateway.New(client), log)
	if err := app.Init(ctx); err != nil {
		// The page still renders; the error is shown as a notification
		log.Warn("Initial data load failed", zap.Error(err))
	}

	srv, err := web.NewServer(app, log)
	if err != nil {
		return fmt.Errorf("failed to create dashboard server: %w", err)
	}

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Dashboard.Port),
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Dashboard listening", zap.String("addr", httpSrv.Addr))
		serverErrors <- httpSrv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}
		log.Info("Dashboard stopped")
	}
	return nil
}
