package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"gorm.io/gorm"
)

// leadNameSelect joins the linked lead's display name onto event rows
const leadNameSelect = "calendar_events.*, " +
	"TRIM(COALESCE(leads.first_name, '') || ' ' || COALESCE(leads.last_name, '')) AS lead_name"

type CalendarEventRepository struct {
	db *gorm.DB
}

func NewCalendarEventRepository(db *gorm.DB) *CalendarEventRepository {
	return &CalendarEventRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *CalendarEventRepository) WithTx(tx *gorm.DB) *CalendarEventRepository {
	return &CalendarEventRepository{db: tx}
}

func (r *CalendarEventRepository) Create(ctx context.Context, event *domain.CalendarEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *CalendarEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CalendarEvent, error) {
	var event domain.CalendarEvent
	err := r.withLeadName(ctx).Where("calendar_events.id = ?", id).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *CalendarEventRepository) Update(ctx context.Context, event *domain.CalendarEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *CalendarEventRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.CalendarEvent{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

// DeleteByLead removes every event referencing the lead
func (r *CalendarEventRepository) DeleteByLead(ctx context.Context, leadID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&domain.CalendarEvent{}, "lead_id = ?", leadID)
	return result.RowsAffected, result.Error
}

// List returns events with their lead name, earliest first
func (r *CalendarEventRepository) List(ctx context.Context) ([]domain.CalendarEvent, error) {
	var events []domain.CalendarEvent
	err := r.withLeadName(ctx).
		Order("calendar_events.date ASC").
		Order("calendar_events.created_at ASC").
		Find(&events).Error
	return events, err
}

// ListWithAmount returns events carrying a positive amount in the range, most recent first
func (r *CalendarEventRepository) ListWithAmount(ctx context.Context, dateRange domain.DateRange) ([]domain.CalendarEvent, error) {
	var events []domain.CalendarEvent
	query := r.withLeadName(ctx).Where("calendar_events.amount > 0")
	if dateRange.IsSet() {
		query = query.Where("calendar_events.date BETWEEN ? AND ?", *dateRange.StartDate, *dateRange.EndDate)
	}
	err := query.Order("calendar_events.date DESC").Find(&events).Error
	return events, err
}

func (r *CalendarEventRepository) withLeadName(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&domain.CalendarEvent{}).
		Select(leadNameSelect).
		Joins("LEFT JOIN leads ON leads.id = calendar_events.lead_id")
}
