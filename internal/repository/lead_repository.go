package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *LeadRepository) WithTx(tx *gorm.DB) *LeadRepository {
	return &LeadRepository{db: tx}
}

// WithTransaction executes operations within a transaction
func (r *LeadRepository) WithTransaction(ctx context.Context, fn func(*gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *LeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	var lead domain.Lead
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&lead).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

// SetFollowUp updates only the follow-up date of a lead
func (r *LeadRepository) SetFollowUp(ctx context.Context, id uuid.UUID, followUp domain.Date) (bool, error) {
	result := r.db.WithContext(ctx).Model(&domain.Lead{}).Where("id = ?", id).Update("follow_up", followUp)
	return result.RowsAffected > 0, result.Error
}

// Delete removes a lead and reports whether a row was deleted
func (r *LeadRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Lead{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

// List returns every lead, newest first
func (r *LeadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&leads).Error
	return leads, err
}

// ListFollowUpsBetween returns leads whose follow-up falls in [from, to], soonest first
func (r *LeadRepository) ListFollowUpsBetween(ctx context.Context, from, to domain.Date) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.db.WithContext(ctx).
		Where("follow_up IS NOT NULL AND follow_up BETWEEN ? AND ?", from, to).
		Order("follow_up ASC").
		Find(&leads).Error
	return leads, err
}

func (r *LeadRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Lead{}).Count(&count).Error
	return int(count), err
}

// Lookup maps lead ids to leads for the given set
func (r *LeadRepository) Lookup(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Lead, error) {
	result := make(map[uuid.UUID]domain.Lead, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var leads []domain.Lead
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&leads).Error; err != nil {
		return nil, err
	}
	for _, lead := range leads {
		result[lead.ID] = lead
	}
	return result, nil
}
