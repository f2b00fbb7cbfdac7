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

type LeadService struct {
	leadRepo     *repository.LeadRepository
	activityRepo *repository.LeadActivityRepository
	eventRepo    *repository.CalendarEventRepository
	logger       *zap.Logger
}

func NewLeadService(
	leadRepo *repository.LeadRepository,
	activityRepo *repository.LeadActivityRepository,
	eventRepo *repository.CalendarEventRepository,
	logger *zap.Logger,
) *LeadService {
	return &LeadService{
		leadRepo:     leadRepo,
		activityRepo: activityRepo,
		eventRepo:    eventRepo,
		logger:       logger,
	}
}

func (s *LeadService) List(ctx context.Context) ([]domain.LeadDTO, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return mapper.ToLeadDTOs(leads), nil
}

func (s *LeadService) GetByID(ctx context.Context, id uuid.UUID) (*domain.LeadDTO, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	dto := mapper.ToLeadDTO(lead)
	return &dto, nil
}

func (s *LeadService) Create(ctx context.Context, req *domain.CreateLeadRequest) (*domain.LeadDTO, error) {
	if err := validateLeadRequest(req); err != nil {
		return nil, err
	}

	lead := &domain.Lead{}
	mapper.ApplyLeadRequest(lead, req)

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	s.logger.Info("lead created",
		zap.String("lead_id", lead.ID.String()),
		zap.String("company", lead.Company),
		zap.String("stage", string(lead.Stage)),
	)

	dto := mapper.ToLeadDTO(lead)
	return &dto, nil
}

func (s *LeadService) Update(ctx context.Context, id uuid.UUID, req *domain.CreateLeadRequest) (*domain.LeadDTO, error) {
	if err := validateLeadRequest(req); err != nil {
		return nil, err
	}

	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	mapper.ApplyLeadRequest(lead, req)

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	s.logger.Info("lead updated",
		zap.String("lead_id", lead.ID.String()),
		zap.String("stage", string(lead.Stage)),
	)

	dto := mapper.ToLeadDTO(lead)
	return &dto, nil
}

// Delete removes a lead together with its activities and calendar events
func (s *LeadService) Delete(ctx context.Context, id uuid.UUID) error {
	var activities, events int64

	err := s.leadRepo.WithTransaction(ctx, func(tx *gorm.DB) error {
		deleted, err := s.leadRepo.WithTx(tx).Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete lead: %w", err)
		}
		if !deleted {
			return ErrLeadNotFound
		}

		activities, err = s.activityRepo.WithTx(tx).DeleteByLead(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete lead activities: %w", err)
		}

		events, err = s.eventRepo.WithTx(tx).DeleteByLead(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete lead calendar events: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("lead deleted",
		zap.String("lead_id", id.String()),
		zap.Int64("activities_deleted", activities),
		zap.Int64("events_deleted", events),
	)
	return nil
}

// DueFollowUps returns leads whose follow-up date lies in [from, to]
func (s *LeadService) DueFollowUps(ctx context.Context, from, to domain.Date) ([]domain.LeadDTO, error) {
	leads, err := s.leadRepo.ListFollowUpsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list follow-ups: %w", err)
	}
	return mapper.ToLeadDTOs(leads), nil
}

func validateLeadRequest(req *domain.CreateLeadRequest) error {
	if req.Stage != "" && !req.Stage.IsValid() {
		return ErrInvalidStage
	}
	return nil
}
