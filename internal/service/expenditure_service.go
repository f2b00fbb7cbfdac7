package service

import (
	"context"
	"strings"

	"github.com/straye-as/sales-dashboard/internal/domain"
	"go.uber.org/zap"
)

// ExpenditureService accepts payloads from the legacy single-table
// expenditure endpoint and stores them in the current tables
type ExpenditureService struct {
	expenseService *GeneralExpenseService
	eventService   *CalendarEventService
	logger         *zap.Logger
}

func NewExpenditureService(
	expenseService *GeneralExpenseService,
	eventService *CalendarEventService,
	logger *zap.Logger,
) *ExpenditureService {
	return &ExpenditureService{
		expenseService: expenseService,
		eventService:   eventService,
		logger:         logger,
	}
}

// Add stores an expenditure. Without a lead it becomes a general expense;
// with a lead it becomes a general_expense calendar event linked to that lead.
// The returned source names the table the row landed in.
func (s *ExpenditureService) Add(ctx context.Context, req *domain.AddExpenditureRequest) (domain.ReportSource, error) {
	if req.Amount.IsNegative() {
		return "", ErrNegativeAmount
	}
	description := legacyDescription(req.ExpenditureType, req.Description)

	if req.LeadID == "" {
		_, err := s.expenseService.Create(ctx, &domain.CreateGeneralExpenseRequest{
			Date:        req.ExpenditureDate,
			Description: description,
			Amount:      *req.Amount,
		})
		if err != nil {
			return "", err
		}
		return domain.ReportSourceGeneralExpenses, nil
	}

	_, err := s.eventService.Create(ctx, &domain.CreateCalendarEventRequest{
		Date:        req.ExpenditureDate,
		Type:        domain.EventTypeGeneralExpense,
		Description: description,
		Amount:      *req.Amount,
		LeadID:      req.LeadID,
	})
	if err != nil {
		return "", err
	}
	return domain.ReportSourceCalendarEvents, nil
}

func legacyDescription(expenditureType, description string) string {
	expenditureType = strings.TrimSpace(expenditureType)
	description = strings.TrimSpace(description)
	if expenditureType == "" || strings.EqualFold(expenditureType, description) {
		return description
	}
	return expenditureType + ": " + description
}
