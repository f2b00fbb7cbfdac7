package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/straye-as/sales-dashboard/internal/mapper"
	"github.com/straye-as/sales-dashboard/internal/repository"
	"go.uber.org/zap"
)

// generalExpenseCategory is the type_category shown for general expense rows
const generalExpenseCategory = "general_expense"

// ReportService builds the expenditure report. Every amount-bearing record
// appears exactly once, tagged with the table it came from; records are never
// merged across sources.
type ReportService struct {
	expenseRepo  *repository.GeneralExpenseRepository
	eventRepo    *repository.CalendarEventRepository
	activityRepo *repository.LeadActivityRepository
	leadRepo     *repository.LeadRepository
	logger       *zap.Logger
}

func NewReportService(
	expenseRepo *repository.GeneralExpenseRepository,
	eventRepo *repository.CalendarEventRepository,
	activityRepo *repository.LeadActivityRepository,
	leadRepo *repository.LeadRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		expenseRepo:  expenseRepo,
		eventRepo:    eventRepo,
		activityRepo: activityRepo,
		leadRepo:     leadRepo,
		logger:       logger,
	}
}

// ExpenditureReport returns report rows in the range, most recent first
func (s *ReportService) ExpenditureReport(ctx context.Context, dateRange domain.DateRange) ([]domain.ExpenditureReportRowDTO, error) {
	rows, err := s.rows(ctx, dateRange)
	if err != nil {
		return nil, err
	}
	return mapper.ToReportRowDTOs(rows), nil
}

// ExpenditureTotal sums the amounts of rows
func ExpenditureTotal(rows []domain.ExpenditureReportRowDTO) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount)
	}
	return total
}

func (s *ReportService) rows(ctx context.Context, dateRange domain.DateRange) ([]domain.ExpenditureReportRow, error) {
	if dateRange.IsSet() && dateRange.EndDate.Before(*dateRange.StartDate) {
		return nil, ErrInvalidDateRange
	}

	expenses, err := s.expenseRepo.List(ctx, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to list general expenses: %w", err)
	}
	events, err := s.eventRepo.ListWithAmount(ctx, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	activities, err := s.activityRepo.ListWithExpenditure(ctx, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to list lead activities: %w", err)
	}

	leadIDs := make([]uuid.UUID, 0, len(events)+len(activities))
	for _, e := range events {
		if e.LeadID != nil {
			leadIDs = append(leadIDs, *e.LeadID)
		}
	}
	for _, a := range activities {
		leadIDs = append(leadIDs, a.LeadID)
	}
	leads, err := s.leadRepo.Lookup(ctx, leadIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to look up leads: %w", err)
	}

	rows := make([]domain.ExpenditureReportRow, 0, len(expenses)+len(events)+len(activities))
	for _, e := range expenses {
		rows = append(rows, domain.ExpenditureReportRow{
			ID:           e.ID,
			Date:         e.Date,
			TypeCategory: generalExpenseCategory,
			Description:  e.Description,
			Amount:       e.Amount,
			SourceTable:  domain.ReportSourceGeneralExpenses,
		})
	}
	for _, e := range events {
		row := domain.ExpenditureReportRow{
			ID:           e.ID,
			Date:         e.Date,
			TypeCategory: string(e.Type),
			Description:  e.Description,
			Amount:       e.Amount,
			LeadID:       e.LeadID,
			SourceTable:  domain.ReportSourceCalendarEvents,
		}
		if e.LeadID != nil {
			if lead, ok := leads[*e.LeadID]; ok {
				row.LeadName = lead.FullName()
				row.Company = lead.Company
			}
		}
		rows = append(rows, row)
	}
	for _, a := range activities {
		leadID := a.LeadID
		row := domain.ExpenditureReportRow{
			ID:           a.ID,
			Date:         a.ActivityDate,
			TypeCategory: string(a.ActivityType),
			Description:  a.Description,
			Amount:       a.Expenditure,
			LeadID:       &leadID,
			SourceTable:  domain.ReportSourceLeadActivities,
		}
		if lead, ok := leads[a.LeadID]; ok {
			row.LeadName = lead.FullName()
			row.Company = lead.Company
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date.Time) {
			return rows[j].Date.Before(rows[i].Date)
		}
		return strings.Compare(string(rows[i].SourceTable), string(rows[j].SourceTable)) < 0
	})

	s.logger.Debug("expenditure report built",
		zap.Int("general_expenses", len(expenses)),
		zap.Int("calendar_events", len(events)),
		zap.Int("lead_activities", len(activities)),
	)
	return rows, nil
}
