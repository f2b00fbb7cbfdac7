// Package testutil builds in-memory databases and API routers for tests.
package testutil

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/straye-as/sales-dashboard/internal/auth"
	"github.com/straye-as/sales-dashboard/internal/config"
	"github.com/straye-as/sales-dashboard/internal/database"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/straye-as/sales-dashboard/internal/http/handler"
	"github.com/straye-as/sales-dashboard/internal/http/middleware"
	"github.com/straye-as/sales-dashboard/internal/http/router"
	"github.com/straye-as/sales-dashboard/internal/repository"
	"github.com/straye-as/sales-dashboard/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TestSecret signs tokens in tests that enable auth
const TestSecret = "test-secret-with-enough-length-1234"

// SetupTestDB opens a migrated in-memory sqlite database closed at test end
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewDatabase(&config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"}, zap.NewNop())
	require.NoError(t, err, "failed to open sqlite test database")
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// TestConfig is an API configuration with auth and rate limiting off
func TestConfig() *config.Config {
	return &config.Config{
		App:  config.AppConfig{Name: "test", Environment: "development"},
		Auth: config.AuthConfig{Issuer: "sales-dashboard", TokenTTL: 1},
		Security: config.SecurityConfig{
			ContentTypeNosniff: true,
			FrameOptions:       "DENY",
		},
		RateLimit: config.RateLimitConfig{Enabled: false, RequestsPerMinute: 1000},
		Firebase:  config.FirebaseConfig{ProjectID: "test-project", APIKey: "test-key"},
	}
}

// Services bundles the services behind the API
type Services struct {
	Leads       *service.LeadService
	Activities  *service.LeadActivityService
	Expenses    *service.GeneralExpenseService
	Events      *service.CalendarEventService
	Reports     *service.ReportService
	Exports     *service.ExportService
	Expenditure *service.ExpenditureService
}

// NewServices wires every service over db
func NewServices(db *gorm.DB) *Services {
	log := zap.NewNop()
	leadRepo := repository.NewLeadRepository(db)
	activityRepo := repository.NewLeadActivityRepository(db)
	expenseRepo := repository.NewGeneralExpenseRepository(db)
	eventRepo := repository.NewCalendarEventRepository(db)

	s := &Services{
		Leads:      service.NewLeadService(leadRepo, activityRepo, eventRepo, log),
		Activities: service.NewLeadActivityService(activityRepo, leadRepo, log),
		Expenses:   service.NewGeneralExpenseService(expenseRepo, log),
		Events:     service.NewCalendarEventService(eventRepo, leadRepo, log),
		Reports:    service.NewReportService(expenseRepo, eventRepo, activityRepo, leadRepo, log),
	}
	s.Exports = service.NewExportService(s.Leads, s.Reports, log)
	s.Expenditure = service.NewExpenditureService(s.Expenses, s.Events, log)
	return s
}

// NewAPIRouter builds the full API handler over db
func NewAPIRouter(t *testing.T, db *gorm.DB, cfg *config.Config) http.Handler {
	t.Helper()
	log := zap.NewNop()
	s := NewServices(db)

	rt := router.NewRouter(
		cfg,
		log,
		db,
		auth.NewMiddleware(&cfg.Auth, log),
		middleware.NewRateLimiter(&cfg.RateLimit, log),
		handler.NewLeadHandler(s.Leads, log),
		handler.NewLeadActivityHandler(s.Activities, log),
		handler.NewGeneralExpenseHandler(s.Expenses, s.Expenditure, log),
		handler.NewCalendarEventHandler(s.Events, log),
		handler.NewReportHandler(s.Reports, s.Exports, log),
		handler.NewBootstrapHandler(&cfg.Firebase),
	)
	return rt.Setup()
}

// Day returns the date y-m-d
func Day(y int, m time.Month, d int) domain.Date {
	return domain.NewDate(y, m, d)
}

// DayPtr returns a pointer to the date y-m-d
func DayPtr(y int, m time.Month, d int) *domain.Date {
	day := domain.NewDate(y, m, d)
	return &day
}

// CreateTestLead inserts a lead in stage with the given contact date
func CreateTestLead(t *testing.T, db *gorm.DB, firstName, company string, stage domain.LeadStage) *domain.Lead {
	t.Helper()
	lead := &domain.Lead{
		FirstName:     firstName,
		LastName:      "Tester",
		Company:       company,
		Email:         firstName + "@example.com",
		Stage:         stage,
		DateOfContact: Day(2024, time.January, 10),
	}
	require.NoError(t, db.Create(lead).Error)
	return lead
}

// CreateTestActivity inserts an activity for lead
func CreateTestActivity(t *testing.T, db *gorm.DB, leadID uuid.UUID, date domain.Date, expenditure string) *domain.LeadActivity {
	t.Helper()
	activity := &domain.LeadActivity{
		LeadID:       leadID,
		ActivityType: domain.ActivityTypeMeeting,
		ActivityDate: date,
		Description:  "Site meeting",
		Expenditure:  decimal.RequireFromString(expenditure),
	}
	require.NoError(t, db.Create(activity).Error)
	return activity
}

// CreateTestExpense inserts a general expense
func CreateTestExpense(t *testing.T, db *gorm.DB, date domain.Date, description, amount string) *domain.GeneralExpense {
	t.Helper()
	expense := &domain.GeneralExpense{
		Date:        date,
		Description: description,
		Amount:      decimal.RequireFromString(amount),
	}
	require.NoError(t, db.Create(expense).Error)
	return expense
}

// CreateTestEvent inserts a calendar event, optionally linked to a lead
func CreateTestEvent(t *testing.T, db *gorm.DB, date domain.Date, eventType domain.EventType, amount string, lead *domain.Lead) *domain.CalendarEvent {
	t.Helper()
	event := &domain.CalendarEvent{
		Date:        date,
		Type:        eventType,
		Description: string(eventType) + " event",
		Amount:      decimal.RequireFromString(amount),
	}
	if lead != nil {
		id := lead.ID
		event.LeadID = &id
	}
	require.NoError(t, db.Create(event).Error)
	return event
}
