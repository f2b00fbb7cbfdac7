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

	"github.com/straye-as/sales-dashboard/docs"
	"github.com/straye-as/sales-dashboard/internal/auth"
	"github.com/straye-as/sales-dashboard/internal/config"
	"github.com/straye-as/sales-dashboard/internal/database"
	"github.com/straye-as/sales-dashboard/internal/http/handler"
	"github.com/straye-as/sales-dashboard/internal/http/middleware"
	"github.com/straye-as/sales-dashboard/internal/http/router"
	"github.com/straye-as/sales-dashboard/internal/jobs"
	"github.com/straye-as/sales-dashboard/internal/logger"
	"github.com/straye-as/sales-dashboard/internal/repository"
	"github.com/straye-as/sales-dashboard/internal/service"
	"github.com/straye-as/sales-dashboard/internal/storage"
	"go.uber.org/zap"
)

// @title Sales Dashboard API
// @version 1.0
// @description Leads, activities, expenses, calendar and expenditure reporting for the sales dashboard
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description HS256 JWT Bearer token issued by cmd/token

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Basic configuration first, for logging setup
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App, "api")
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Deployed environments serve the docs from the request host
	if basicCfg.App.Environment == "development" {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Full configuration with secrets from Key Vault in staging/production
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	if cfg.Auth.Enabled && cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth is enabled but JWT_SECRET is not set")
	}
	if !cfg.Auth.Enabled {
		log.Warn("API authentication disabled")
	}

	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Repositories
	leadRepo := repository.NewLeadRepository(db)
	activityRepo := repository.NewLeadActivityRepository(db)
	expenseRepo := repository.NewGeneralExpenseRepository(db)
	eventRepo := repository.NewCalendarEventRepository(db)

	// Services
	leadService := service.NewLeadService(leadRepo, activityRepo, eventRepo, log)
	activityService := service.NewLeadActivityService(activityRepo, leadRepo, log)
	expenseService := service.NewGeneralExpenseService(expenseRepo, log)
	eventService := service.NewCalendarEventService(eventRepo, leadRepo, log)
	expenditureService := service.NewExpenditureService(expenseService, eventService, log)
	reportService := service.NewReportService(expenseRepo, eventRepo, activityRepo, leadRepo, log)
	exportService := service.NewExportService(leadService, reportService, log)

	// Middleware
	authMiddleware := auth.NewMiddleware(&cfg.Auth, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Handlers
	leadHandler := handler.NewLeadHandler(leadService, log)
	activityHandler := handler.NewLeadActivityHandler(activityService, log)
	expenseHandler := handler.NewGeneralExpenseHandler(expenseService, expenditureService, log)
	eventHandler := handler.NewCalendarEventHandler(eventService, log)
	reportHandler := handler.NewReportHandler(reportService, exportService, log)
	bootstrapHandler := handler.NewBootstrapHandler(&cfg.Firebase)

	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		leadHandler,
		activityHandler,
		expenseHandler,
		eventHandler,
		reportHandler,
		bootstrapHandler,
	)

	// Background jobs
	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(log)

		if err := jobs.RegisterReportArchiveJob(
			scheduler,
			exportService,
			fileStorage,
			log,
			cfg.Jobs.ReportArchiveCron,
			cfg.Jobs.TimeoutDuration(),
			cfg.Jobs.ArchiveRetention,
		); err != nil {
			log.Error("Failed to register report archive job", zap.Error(err))
		}

		if err := jobs.RegisterFollowUpDigestJob(
			scheduler,
			leadService,
			log,
			cfg.Jobs.FollowUpDigestCron,
			cfg.Jobs.TimeoutDuration(),
		); err != nil {
			log.Error("Failed to register follow-up digest job", zap.Error(err))
		}

		scheduler.Start()
		log.Info("Scheduler started", zap.Strings("jobs", scheduler.GetJobNames()))
	} else {
		log.Info("Background jobs disabled")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
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

		if scheduler != nil {
			<-scheduler.Stop().Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
