package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"gorm.io/gorm"
)

type GeneralExpenseRepository struct {
	db *gorm.DB
}

func NewGeneralExpenseRepository(db *gorm.DB) *GeneralExpenseRepository {
	return &GeneralExpenseRepository{db: db}
}

func (r *GeneralExpenseRepository) Create(ctx context.Context, expense *domain.GeneralExpense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *GeneralExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GeneralExpense, error) {
	var expense domain.GeneralExpense
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&expense).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *GeneralExpenseRepository) Update(ctx context.Context, expense *domain.GeneralExpense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *GeneralExpenseRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.GeneralExpense{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

// List returns expenses in the range (all when unset), most recent first
func (r *GeneralExpenseRepository) List(ctx context.Context, dateRange domain.DateRange) ([]domain.GeneralExpense, error) {
	var expenses []domain.GeneralExpense
	query := r.db.WithContext(ctx).Model(&domain.GeneralExpense{})
	if dateRange.IsSet() {
		query = query.Where("date BETWEEN ? AND ?", *dateRange.StartDate, *dateRange.EndDate)
	}
	err := query.Order("date DESC").Order("created_at DESC").Find(&expenses).Error
	return expenses, err
}
