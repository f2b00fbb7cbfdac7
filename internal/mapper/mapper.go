package mapper

import (
	"github.com/straye-as/sales-dashboard/internal/domain"
)

const timestampLayout = "2006-01-02T15:04:05Z"

// ToLeadDTO converts Lead to LeadDTO
func ToLeadDTO(lead *domain.Lead) domain.LeadDTO {
	return domain.LeadDTO{
		ID:            lead.ID,
		FirstName:     lead.FirstName,
		LastName:      lead.LastName,
		Title:         lead.Title,
		Company:       lead.Company,
		Email:         lead.Email,
		Phone:         lead.Phone,
		Product:       lead.Product,
		Stage:         lead.Stage,
		DateOfContact: lead.DateOfContact,
		FollowUp:      lead.FollowUp,
		Notes:         lead.Notes,
		CreatedAt:     lead.CreatedAt.UTC().Format(timestampLayout),
	}
}

// ToLeadDTOs converts a slice of leads
func ToLeadDTOs(leads []domain.Lead) []domain.LeadDTO {
	dtos := make([]domain.LeadDTO, len(leads))
	for i := range leads {
		dtos[i] = ToLeadDTO(&leads[i])
	}
	return dtos
}

// ToLeadActivityDTO converts LeadActivity to LeadActivityDTO
func ToLeadActivityDTO(activity *domain.LeadActivity) domain.LeadActivityDTO {
	return domain.LeadActivityDTO{
		ID:           activity.ID,
		LeadID:       activity.LeadID,
		ActivityType: activity.ActivityType,
		ActivityDate: activity.ActivityDate,
		Description:  activity.Description,
		Expenditure:  activity.Expenditure,
		CreatedAt:    activity.CreatedAt.UTC().Format(timestampLayout),
	}
}

// ToLeadActivityDTOs converts a slice of lead activities
func ToLeadActivityDTOs(activities []domain.LeadActivity) []domain.LeadActivityDTO {
	dtos := make([]domain.LeadActivityDTO, len(activities))
	for i := range activities {
		dtos[i] = ToLeadActivityDTO(&activities[i])
	}
	return dtos
}

// ToGeneralExpenseDTO converts GeneralExpense to GeneralExpenseDTO
func ToGeneralExpenseDTO(expense *domain.GeneralExpense) domain.GeneralExpenseDTO {
	return domain.GeneralExpenseDTO{
		ID:          expense.ID,
		Date:        expense.Date,
		Description: expense.Description,
		Amount:      expense.Amount,
		CreatedAt:   expense.CreatedAt.UTC().Format(timestampLayout),
	}
}

// ToGeneralExpenseDTOs converts a slice of general expenses
func ToGeneralExpenseDTOs(expenses []domain.GeneralExpense) []domain.GeneralExpenseDTO {
	dtos := make([]domain.GeneralExpenseDTO, len(expenses))
	for i := range expenses {
		dtos[i] = ToGeneralExpenseDTO(&expenses[i])
	}
	return dtos
}

// ToCalendarEventDTO converts CalendarEvent to CalendarEventDTO
func ToCalendarEventDTO(event *domain.CalendarEvent) domain.CalendarEventDTO {
	return domain.CalendarEventDTO{
		ID:          event.ID,
		Date:        event.Date,
		EndDate:     event.EndDate,
		Type:        event.Type,
		Description: event.Description,
		Amount:      event.Amount,
		LeadID:      event.LeadID,
		LeadName:    event.LeadName,
		CreatedAt:   event.CreatedAt.UTC().Format(timestampLayout),
	}
}

// ToCalendarEventDTOs converts a slice of calendar events
func ToCalendarEventDTOs(events []domain.CalendarEvent) []domain.CalendarEventDTO {
	dtos := make([]domain.CalendarEventDTO, len(events))
	for i := range events {
		dtos[i] = ToCalendarEventDTO(&events[i])
	}
	return dtos
}

// ToReportRowDTOs converts report rows
func ToReportRowDTOs(rows []domain.ExpenditureReportRow) []domain.ExpenditureReportRowDTO {
	dtos := make([]domain.ExpenditureReportRowDTO, len(rows))
	for i, row := range rows {
		dtos[i] = domain.ExpenditureReportRowDTO{
			ID:           row.ID,
			Date:         row.Date,
			TypeCategory: row.TypeCategory,
			Description:  row.Description,
			Amount:       row.Amount,
			LeadID:       row.LeadID,
			LeadName:     row.LeadName,
			Company:      row.Company,
			SourceTable:  row.SourceTable,
		}
	}
	return dtos
}

// ApplyLeadRequest copies request fields onto a lead model
func ApplyLeadRequest(lead *domain.Lead, req *domain.CreateLeadRequest) {
	lead.FirstName = req.FirstName
	lead.LastName = req.LastName
	lead.Title = req.Title
	lead.Company = req.Company
	lead.Email = req.Email
	lead.Phone = req.Phone
	lead.Product = req.Product
	lead.Stage = req.Stage
	if lead.Stage == "" {
		lead.Stage = domain.LeadStageNew
	}
	if req.DateOfContact != nil {
		lead.DateOfContact = *req.DateOfContact
	}
	lead.FollowUp = req.FollowUp
	lead.Notes = req.Notes
}
