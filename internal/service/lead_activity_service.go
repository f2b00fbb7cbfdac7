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

type LeadActivityService struct {
	activityRepo *repository.LeadActivityRepository
	leadRepo     *repository.LeadRepository
	logger       *zap.Logger
}

func NewLeadActivityService(
	activityRepo *repository.LeadActivityRepository,
	leadRepo *repository.LeadRepository,
	logger *zap.Logger,
) *LeadActivityService {
	return &LeadActivityService{
		activityRepo: activityRepo,
		leadRepo:     leadRepo,
		logger:       logger,
	}
}

// List returns all activities, or only those of leadID when set
func (s *LeadActivityService) List(ctx context.Context, leadID *uuid.UUID) ([]domain.LeadActivityDTO, error) {
	activities, err := s.activityRepo.List(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lead activities: %w", err)
	}
	return mapper.ToLeadActivityDTOs(activities), nil
}

func (s *LeadActivityService) GetByID(ctx context.Context, id uuid.UUID) (*domain.LeadActivityDTO, error) {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadActivityNotFound
		}
		return nil, fmt.Errorf("failed to get lead activity: %w", err)
	}
	dto := mapper.ToLeadActivityDTO(activity)
	return &dto, nil
}

func (s *LeadActivityService) Create(ctx context.Context, req *domain.CreateLeadActivityRequest) (*domain.LeadActivityDTO, error) {
	leadID, err := s.checkRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	activity := &domain.LeadActivity{
		LeadID:       leadID,
		ActivityType: req.ActivityType,
		ActivityDate: *req.ActivityDate,
		Description:  req.Description,
		Expenditure:  req.Expenditure,
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create lead activity: %w", err)
	}

	s.logger.Info("lead activity created",
		zap.String("activity_id", activity.ID.String()),
		zap.String("lead_id", leadID.String()),
		zap.String("type", string(activity.ActivityType)),
	)

	dto := mapper.ToLeadActivityDTO(activity)
	return &dto, nil
}

func (s *LeadActivityService) Update(ctx context.Context, id uuid.UUID, req *domain.CreateLeadActivityRequest) (*domain.LeadActivityDTO, error) {
	leadID, err := s.checkRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadActivityNotFound
		}
		return nil, fmt.Errorf("failed to get lead activity: %w", err)
	}

	activity.LeadID = leadID
	activity.ActivityType = req.ActivityType
	activity.ActivityDate = *req.ActivityDate
	activity.Description = req.Description
	activity.Expenditure = req.Expenditure

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to update lead activity: %w", err)
	}

	s.logger.Info("lead activity updated", zap.String("activity_id", activity.ID.String()))

	dto := mapper.ToLeadActivityDTO(activity)
	return &dto, nil
}

func (s *LeadActivityService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.activityRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete lead activity: %w", err)
	}
	if !deleted {
		return ErrLeadActivityNotFound
	}
	s.logger.Info("lead activity deleted", zap.String("activity_id", id.String()))
	return nil
}

func (s *LeadActivityService) checkRequest(ctx context.Context, req *domain.CreateLeadActivityRequest) (uuid.UUID, error) {
	if !req.ActivityType.IsValid() {
		return uuid.Nil, ErrInvalidActivityType
	}
	if req.Expenditure.IsNegative() {
		return uuid.Nil, ErrNegativeAmount
	}
	leadID, err := uuid.Parse(req.LeadID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid lead_id", ErrInvalidInput)
	}
	if _, err := s.leadRepo.GetByID(ctx, leadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrUnknownLead
		}
		return uuid.Nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return leadID, nil
}
