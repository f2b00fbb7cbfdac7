package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Amounts travel as JSON numbers, matching what the dashboard posts
	decimal.MarshalJSONWithoutQuotes = true
}

// BaseModel with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns the id on the client side so sqlite and postgres behave alike
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// LeadStage is the pipeline position of a lead and the chart bucket key
type LeadStage string

const (
	LeadStageNew         LeadStage = "New"
	LeadStageContacted   LeadStage = "Contacted"
	LeadStageQualified   LeadStage = "Qualified"
	LeadStageProposal    LeadStage = "Proposal"
	LeadStageNegotiation LeadStage = "Negotiation"
	LeadStageClosedWon   LeadStage = "Closed Won"
	LeadStageClosedLost  LeadStage = "Closed Lost"
)

// LeadStages lists every stage in pipeline order
var LeadStages = []LeadStage{
	LeadStageNew,
	LeadStageContacted,
	LeadStageQualified,
	LeadStageProposal,
	LeadStageNegotiation,
	LeadStageClosedWon,
	LeadStageClosedLost,
}

// IsValid reports whether s is one of the enumerated stages
func (s LeadStage) IsValid() bool {
	for _, stage := range LeadStages {
		if s == stage {
			return true
		}
	}
	return false
}

// Lead is a sales prospect
type Lead struct {
	BaseModel
	FirstName     string    `gorm:"type:varchar(100);not null;column:first_name"`
	LastName      string    `gorm:"type:varchar(100);column:last_name"`
	Title         string    `gorm:"type:varchar(100)"`
	Company       string    `gorm:"type:varchar(200);not null;index"`
	Email         string    `gorm:"type:varchar(255)"`
	Phone         string    `gorm:"type:varchar(50)"`
	Product       string    `gorm:"type:varchar(200)"`
	Stage         LeadStage `gorm:"type:varchar(50);not null;default:'New';index"`
	DateOfContact Date      `gorm:"type:date;not null;column:date_of_contact"`
	FollowUp      *Date     `gorm:"type:date;column:follow_up;index"`
	Notes         string    `gorm:"type:text"`
}

// FullName joins first and last name
func (l *Lead) FullName() string {
	if l.LastName == "" {
		return l.FirstName
	}
	return l.FirstName + " " + l.LastName
}

// ActivityType classifies a lead activity
type ActivityType string

const (
	ActivityTypeCall      ActivityType = "call"
	ActivityTypeEmail     ActivityType = "email"
	ActivityTypeMeeting   ActivityType = "meeting"
	ActivityTypeVisit     ActivityType = "visit"
	ActivityTypeColdVisit ActivityType = "cold_visit"
	ActivityTypeDemo      ActivityType = "demo"
	ActivityTypeOther     ActivityType = "other"
)

// ActivityTypes lists every activity type
var ActivityTypes = []ActivityType{
	ActivityTypeCall, ActivityTypeEmail, ActivityTypeMeeting, ActivityTypeVisit,
	ActivityTypeColdVisit, ActivityTypeDemo, ActivityTypeOther,
}

func (t ActivityType) IsValid() bool {
	for _, v := range ActivityTypes {
		if t == v {
			return true
		}
	}
	return false
}

// LeadActivity is an interaction logged against a lead. LeadID is a weak reference.
type LeadActivity struct {
	BaseModel
	LeadID       uuid.UUID       `gorm:"type:uuid;not null;index;column:lead_id"`
	ActivityType ActivityType    `gorm:"type:varchar(50);not null;column:activity_type"`
	ActivityDate Date            `gorm:"type:date;not null;column:activity_date;index"`
	Description  string          `gorm:"type:text"`
	Expenditure  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
}

// GeneralExpense is an overhead cost not tied to any lead
type GeneralExpense struct {
	BaseModel
	Date        Date            `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:text;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
}

// EventType classifies a calendar event
type EventType string

const (
	EventTypeFollowUp       EventType = "follow_up"
	EventTypeVisit          EventType = "visit"
	EventTypeMeeting        EventType = "meeting"
	EventTypeColdVisit      EventType = "cold_visit"
	EventTypeOfficeDayNote  EventType = "office_day_note"
	EventTypeGeneralExpense EventType = "general_expense"
	EventTypeOther          EventType = "other"
)

// EventTypes lists every calendar event type
var EventTypes = []EventType{
	EventTypeFollowUp, EventTypeVisit, EventTypeMeeting, EventTypeColdVisit,
	EventTypeOfficeDayNote, EventTypeGeneralExpense, EventTypeOther,
}

func (t EventType) IsValid() bool {
	for _, v := range EventTypes {
		if t == v {
			return true
		}
	}
	return false
}

// CalendarEvent is a dated entry on the shared calendar. LeadID is a nullable weak reference.
type CalendarEvent struct {
	BaseModel
	Date        Date            `gorm:"type:date;not null;index"`
	EndDate     *Date           `gorm:"type:date;column:end_date"`
	Type        EventType       `gorm:"type:varchar(50);not null"`
	Description string          `gorm:"type:text"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	LeadID      *uuid.UUID      `gorm:"type:uuid;index;column:lead_id"`

	// Populated by joins, never written
	LeadName string `gorm:"->;-:migration;column:lead_name"`
}

// ReportSource names the collection an expenditure report row came from
type ReportSource string

const (
	ReportSourceGeneralExpenses ReportSource = "general_expenses"
	ReportSourceCalendarEvents  ReportSource = "calendar_events"
	ReportSourceLeadActivities  ReportSource = "lead_activities"
)

// ExpenditureReportRow is a derived projection over every amount-bearing record
type ExpenditureReportRow struct {
	ID           uuid.UUID
	Date         Date
	TypeCategory string
	Description  string
	Amount       decimal.Decimal
	LeadID       *uuid.UUID
	LeadName     string
	Company      string
	SourceTable  ReportSource
}
