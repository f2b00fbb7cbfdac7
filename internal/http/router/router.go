package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "github.com/straye-as/sales-dashboard/docs" // registers the swagger document
	"github.com/straye-as/sales-dashboard/internal/auth"
	"github.com/straye-as/sales-dashboard/internal/config"
	"github.com/straye-as/sales-dashboard/internal/database"
	"github.com/straye-as/sales-dashboard/internal/http/handler"
	"github.com/straye-as/sales-dashboard/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Router struct {
	cfg                   *config.Config
	logger                *zap.Logger
	db                    *gorm.DB
	authMiddleware        *auth.Middleware
	rateLimiter           *middleware.RateLimiter
	leadHandler           *handler.LeadHandler
	leadActivityHandler   *handler.LeadActivityHandler
	generalExpenseHandler *handler.GeneralExpenseHandler
	calendarEventHandler  *handler.CalendarEventHandler
	reportHandler         *handler.ReportHandler
	bootstrapHandler      *handler.BootstrapHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	leadHandler *handler.LeadHandler,
	leadActivityHandler *handler.LeadActivityHandler,
	generalExpenseHandler *handler.GeneralExpenseHandler,
	calendarEventHandler *handler.CalendarEventHandler,
	reportHandler *handler.ReportHandler,
	bootstrapHandler *handler.BootstrapHandler,
) *Router {
	return &Router{
		cfg:                   cfg,
		logger:                logger,
		db:                    db,
		authMiddleware:        authMiddleware,
		rateLimiter:           rateLimiter,
		leadHandler:           leadHandler,
		leadActivityHandler:   leadActivityHandler,
		generalExpenseHandler: generalExpenseHandler,
		calendarEventHandler:  calendarEventHandler,
		reportHandler:         reportHandler,
		bootstrapHandler:      bootstrapHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))

	// Liveness probe
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Database health with pool stats
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			writeHealth(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		writeHealth(w, http.StatusOK, map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
			},
		})
	})

	// Readiness probe over all dependencies
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]interface{}{}
		status := http.StatusOK

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{"status": "unhealthy", "error": err.Error()}
			status = http.StatusServiceUnavailable
		} else {
			checks["database"] = map[string]interface{}{"status": "healthy"}
		}

		overall := "healthy"
		if status != http.StatusOK {
			overall = "unhealthy"
		}
		writeHealth(w, status, map[string]interface{}{"status": overall, "checks": checks})
	})

	r.Handle("/metrics", promhttp.Handler())

	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Route("/api", func(r chi.Router) {
		if timeout := rt.cfg.Server.RequestTimeoutDuration(); timeout > 0 {
			r.Use(chimw.Timeout(timeout))
		}

		// Public: the browser needs this before it has a token
		r.Get("/firebase_config", rt.bootstrapHandler.FirebaseConfig)

		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)
			r.Use(rt.rateLimiter.Limit)

			r.Route("/leads", func(r chi.Router) {
				r.Get("/", rt.leadHandler.List)
				r.Post("/", rt.leadHandler.Create)
				r.Put("/", rt.leadHandler.Update)
				r.Delete("/", rt.leadHandler.Delete)
			})

			r.Route("/lead_activities", func(r chi.Router) {
				r.Get("/", rt.leadActivityHandler.List)
				r.Post("/", rt.leadActivityHandler.Create)
				r.Put("/", rt.leadActivityHandler.Update)
				r.Delete("/", rt.leadActivityHandler.Delete)
			})

			r.Route("/general_expenses", func(r chi.Router) {
				r.Get("/", rt.generalExpenseHandler.List)
				r.Post("/", rt.generalExpenseHandler.Create)
				r.Put("/", rt.generalExpenseHandler.Update)
				r.Delete("/", rt.generalExpenseHandler.Delete)
			})

			r.Route("/calendar_events", func(r chi.Router) {
				r.Get("/", rt.calendarEventHandler.List)
				r.Post("/", rt.calendarEventHandler.Create)
				r.Put("/", rt.calendarEventHandler.Update)
				r.Delete("/", rt.calendarEventHandler.Delete)
			})

			r.Post("/add_expenditure", rt.generalExpenseHandler.AddExpenditure)

			r.Get("/expenditure_report", rt.reportHandler.ExpenditureReport)
			r.Get("/export_leads", rt.reportHandler.ExportLeads)
			r.Get("/export_expenditure_report", rt.reportHandler.ExportExpenditureReport)
		})
	})

	return r
}

func writeHealth(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
