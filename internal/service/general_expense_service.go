package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/straye-as/sales-dashboard/internal/mapper"
	"github.com/straye-as/sales-dashboard/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type GeneralExpenseService struct {
	expenseRepo *repository.GeneralExpenseRepository
	logger      *zap.Logger
}

func NewGeneralExpenseService(expenseRepo *repository.GeneralExpenseRepository, logger *zap.Logger) *GeneralExpenseService {
	return &GeneralExpenseService{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (s *GeneralExpenseService) List(ctx context.Context) ([]domain.GeneralExpenseDTO, error) {
	expenses, err := s.expenseRepo.List(ctx, domain.DateRange{})
	if err != nil {
		return nil, fmt.Errorf("failed to list general expenses: %w", err)
	}
	return mapper.ToGeneralExpenseDTOs(expenses), nil
}

func (s *GeneralExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*domain.GeneralExpenseDTO, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGeneralExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get general expense: %w", err)
	}
	dto := mapper.ToGeneralExpenseDTO(expense)
	return &dto, nil
}

func (s *GeneralExpenseService) Create(ctx context.Context, req *domain.CreateGeneralExpenseRequest) (*domain.GeneralExpenseDTO, error) {
	if req.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	expense := &domain.GeneralExpense{
		Date:        *req.Date,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create general expense: %w", err)
	}

	s.logger.Info("general expense created",
		zap.String("expense_id", expense.ID.String()),
		zap.String("amount", expense.Amount.StringFixed(2)),
	)

	dto := mapper.ToGeneralExpenseDTO(expense)
	return &dto, nil
}

func (s *GeneralExpenseService) Update(ctx context.Context, id uuid.UUID, req *domain.CreateGeneralExpenseRequest) (*domain.GeneralExpenseDTO, error) {
	if req.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGeneralExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get general expense: %w", err)
	}

	expense.Date = *req.Date
	expense.Description = req.Description
	expense.Amount = req.Amount

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update general expense: %w", err)
	}

	s.logger.Info("general expense updated", zap.String("expense_id", expense.ID.String()))

	dto := mapper.ToGeneralExpenseDTO(expense)
	return &dto, nil
}

func (s *GeneralExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.expenseRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete general expense: %w", err)
	}
	if !deleted {
		return ErrGeneralExpenseNotFound
	}
	s.logger.Info("general expense deleted", zap.String("expense_id", id.String()))
	return nil
}
