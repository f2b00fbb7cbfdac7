package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"gorm.io/gorm"
)

type LeadActivityRepository struct {
	db *gorm.DB
}

func NewLeadActivityRepository(db *gorm.DB) *LeadActivityRepository {
	return &LeadActivityRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *LeadActivityRepository) WithTx(tx *gorm.DB) *LeadActivityRepository {
	return &LeadActivityRepository{db: tx}
}

func (r *LeadActivityRepository) Create(ctx context.Context, activity *domain.LeadActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *LeadActivityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LeadActivity, error) {
	var activity domain.LeadActivity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&activity).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *LeadActivityRepository) Update(ctx context.Context, activity *domain.LeadActivity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *LeadActivityRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.LeadActivity{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

// DeleteByLead removes every activity referencing the lead
func (r *LeadActivityRepository) DeleteByLead(ctx context.Context, leadID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&domain.LeadActivity{}, "lead_id = ?", leadID)
	return result.RowsAffected, result.Error
}

// List returns activities, optionally for one lead, most recent first
func (r *LeadActivityRepository) List(ctx context.Context, leadID *uuid.UUID) ([]domain.LeadActivity, error) {
	var activities []domain.LeadActivity
	query := r.db.WithContext(ctx).Model(&domain.LeadActivity{})
	if leadID != nil {
		query = query.Where("lead_id = ?", *leadID)
	}
	err := query.Order("activity_date DESC").Order("created_at DESC").Find(&activities).Error
	return activities, err
}

// ListWithExpenditure returns activities carrying a positive expenditure in the range
func (r *LeadActivityRepository) ListWithExpenditure(ctx context.Context, dateRange domain.DateRange) ([]domain.LeadActivity, error) {
	var activities []domain.LeadActivity
	query := r.db.WithContext(ctx).Where("expenditure > 0")
	if dateRange.IsSet() {
		query = query.Where("activity_date BETWEEN ? AND ?", *dateRange.StartDate, *dateRange.EndDate)
	}
	err := query.Order("activity_date DESC").Find(&activities).Error
	return activities, err
}
