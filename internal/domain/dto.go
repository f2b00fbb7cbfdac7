package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DTOs for API responses. Lead fields are camelCase; every other entity
// keeps the snake_case names the dashboard has always posted.

type LeadDTO struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Title         string    `json:"title"`
	Company       string    `json:"company"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Product       string    `json:"product"`
	Stage         LeadStage `json:"stage"`
	DateOfContact Date      `json:"dateOfContact"`
	FollowUp      *Date     `json:"followUp"`
	Notes         string    `json:"notes"`
	CreatedAt     string    `json:"createdAt"` // ISO 8601
}

// FullName joins first and last name
func (l LeadDTO) FullName() string {
	if l.LastName == "" {
		return l.FirstName
	}
	return l.FirstName + " " + l.LastName
}

type LeadActivityDTO struct {
	ID           uuid.UUID       `json:"id"`
	LeadID       uuid.UUID       `json:"lead_id"`
	ActivityType ActivityType    `json:"activity_type"`
	ActivityDate Date            `json:"activity_date"`
	Description  string          `json:"description"`
	Expenditure  decimal.Decimal `json:"expenditure"`
	CreatedAt    string          `json:"created_at"`
}

type GeneralExpenseDTO struct {
	ID          uuid.UUID       `json:"id"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   string          `json:"created_at"`
}

type CalendarEventDTO struct {
	ID          uuid.UUID       `json:"id"`
	Date        Date            `json:"date"`
	EndDate     *Date           `json:"end_date,omitempty"`
	Type        EventType       `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	LeadID      *uuid.UUID      `json:"lead_id"`
	LeadName    string          `json:"lead_name,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

type ExpenditureReportRowDTO struct {
	ID           uuid.UUID       `json:"id"`
	Date         Date            `json:"date"`
	TypeCategory string          `json:"type_category"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	LeadID       *uuid.UUID      `json:"lead_id"`
	LeadName     string          `json:"lead_name"`
	Company      string          `json:"company"`
	SourceTable  ReportSource    `json:"source_table"`
}

// MutationResponse is returned by every create, update and delete endpoint
type MutationResponse struct {
	ID      *uuid.UUID `json:"id,omitempty"`
	Message string     `json:"message"`
}

// FirebaseWebConfig is the browser SDK configuration object
type FirebaseWebConfig struct {
	APIKey            string `json:"apiKey"`
	AppID             string `json:"appId"`
	AuthDomain        string `json:"authDomain"`
	MeasurementID     string `json:"measurementId"`
	MessagingSenderID string `json:"messagingSenderId"`
	ProjectID         string `json:"projectId"`
	StorageBucket     string `json:"storageBucket"`
}

// ClientBootstrapDTO is served to the browser before it signs in
type ClientBootstrapDTO struct {
	FirebaseConfig   FirebaseWebConfig `json:"firebaseConfig"`
	InitialAuthToken string            `json:"initialAuthToken"`
}

// Request DTOs

type CreateLeadRequest struct {
	FirstName     string    `json:"firstName" validate:"required,max=100"`
	LastName      string    `json:"lastName,omitempty" validate:"max=100"`
	Title         string    `json:"title,omitempty" validate:"max=100"`
	Company       string    `json:"company" validate:"required,max=200"`
	Email         string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone         string    `json:"phone,omitempty" validate:"max=50"`
	Product       string    `json:"product,omitempty" validate:"max=200"`
	Stage         LeadStage `json:"stage,omitempty"`
	DateOfContact *Date     `json:"dateOfContact" validate:"required"`
	FollowUp      *Date     `json:"followUp"`
	Notes         string    `json:"notes,omitempty"`
}

type UpdateLeadRequest struct {
	ID string `json:"id"`
	CreateLeadRequest
}

type CreateLeadActivityRequest struct {
	LeadID       string          `json:"lead_id" validate:"required,uuid"`
	ActivityType ActivityType    `json:"activity_type" validate:"required"`
	ActivityDate *Date           `json:"activity_date" validate:"required"`
	Description  string          `json:"description,omitempty"`
	Expenditure  decimal.Decimal `json:"expenditure"`
}

type UpdateLeadActivityRequest struct {
	ID string `json:"id"`
	CreateLeadActivityRequest
}

type CreateGeneralExpenseRequest struct {
	Date        *Date           `json:"date" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

type UpdateGeneralExpenseRequest struct {
	ID string `json:"id"`
	CreateGeneralExpenseRequest
}

type CreateCalendarEventRequest struct {
	Date        *Date           `json:"date" validate:"required"`
	EndDate     *Date           `json:"end_date,omitempty"`
	Type        EventType       `json:"type" validate:"required"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	LeadID      string          `json:"lead_id,omitempty" validate:"omitempty,uuid"`
}

type UpdateCalendarEventRequest struct {
	ID string `json:"id"`
	CreateCalendarEventRequest
}

// AddExpenditureRequest is the payload of the legacy single-table expenditure endpoint
type AddExpenditureRequest struct {
	ExpenditureDate *Date            `json:"expenditure_date" validate:"required"`
	ExpenditureType string           `json:"expenditure_type" validate:"required"`
	Description     string           `json:"description" validate:"required"`
	Amount          *decimal.Decimal `json:"amount" validate:"required"`
	LeadID          string           `json:"lead_id,omitempty" validate:"omitempty,uuid"`
}

// DateRange filters by an inclusive date range; it applies only when both ends are set
type DateRange struct {
	StartDate *Date
	EndDate   *Date
}

// IsSet reports whether both ends of the range are present
func (r DateRange) IsSet() bool {
	return r.StartDate != nil && r.EndDate != nil
}

// Contains reports whether d lies in the range; an unset range contains everything
func (r DateRange) Contains(d Date) bool {
	if !r.IsSet() {
		return true
	}
	return !d.Before(*r.StartDate) && !r.EndDate.Before(d)
}
