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

type CalendarEventService struct {
	eventRepo *repository.CalendarEventRepository
	leadRepo  *repository.LeadRepository
	logger    *zap.Logger
}

func NewCalendarEventService(
	eventRepo *repository.CalendarEventRepository,
	leadRepo *repository.LeadRepository,
	logger *zap.Logger,
) *CalendarEventService {
	return &CalendarEventService{
		eventRepo: eventRepo,
		leadRepo:  leadRepo,
		logger:    logger,
	}
}

func (s *CalendarEventService) List(ctx context.Context) ([]domain.CalendarEventDTO, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return mapper.ToCalendarEventDTOs(events), nil
}

func (s *CalendarEventService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CalendarEventDTO, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCalendarEventNotFound
		}
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}
	dto := mapper.ToCalendarEventDTO(event)
	return &dto, nil
}

func (s *CalendarEventService) Create(ctx context.Context, req *domain.CreateCalendarEventRequest) (*domain.CalendarEventDTO, error) {
	leadID, err := s.checkRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	event := &domain.CalendarEvent{}
	applyEventRequest(event, req, leadID)

	err = s.leadRepo.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.eventRepo.WithTx(tx).Create(ctx, event); err != nil {
			return fmt.Errorf("failed to create calendar event: %w", err)
		}
		return s.propagateFollowUp(ctx, tx, event)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("calendar event created",
		zap.String("event_id", event.ID.String()),
		zap.String("type", string(event.Type)),
	)

	return s.GetByID(ctx, event.ID)
}

func (s *CalendarEventService) Update(ctx context.Context, id uuid.UUID, req *domain.CreateCalendarEventRequest) (*domain.CalendarEventDTO, error) {
	leadID, err := s.checkRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCalendarEventNotFound
		}
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}

	applyEventRequest(event, req, leadID)

	err = s.leadRepo.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.eventRepo.WithTx(tx).Update(ctx, event); err != nil {
			return fmt.Errorf("failed to update calendar event: %w", err)
		}
		return s.propagateFollowUp(ctx, tx, event)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("calendar event updated", zap.String("event_id", event.ID.String()))

	return s.GetByID(ctx, event.ID)
}

func (s *CalendarEventService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	if !deleted {
		return ErrCalendarEventNotFound
	}
	s.logger.Info("calendar event deleted", zap.String("event_id", id.String()))
	return nil
}

// propagateFollowUp moves the linked lead's follow-up date to a follow_up event's date
func (s *CalendarEventService) propagateFollowUp(ctx context.Context, tx *gorm.DB, event *domain.CalendarEvent) error {
	if event.Type != domain.EventTypeFollowUp || event.LeadID == nil {
		return nil
	}
	if _, err := s.leadRepo.WithTx(tx).SetFollowUp(ctx, *event.LeadID, event.Date); err != nil {
		return fmt.Errorf("failed to update lead follow-up: %w", err)
	}
	return nil
}

func (s *CalendarEventService) checkRequest(ctx context.Context, req *domain.CreateCalendarEventRequest) (*uuid.UUID, error) {
	if !req.Type.IsValid() {
		return nil, ErrInvalidEventType
	}
	if req.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if req.EndDate != nil && req.EndDate.Before(*req.Date) {
		return nil, ErrInvalidDateRange
	}
	if req.LeadID == "" {
		return nil, nil
	}
	leadID, err := uuid.Parse(req.LeadID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid lead_id", ErrInvalidInput)
	}
	if _, err := s.leadRepo.GetByID(ctx, leadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownLead
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return &leadID, nil
}

func applyEventRequest(event *domain.CalendarEvent, req *domain.CreateCalendarEventRequest, leadID *uuid.UUID) {
	event.Date = *req.Date
	event.EndDate = req.EndDate
	event.Type = req.Type
	event.Description = req.Description
	event.Amount = req.Amount
	event.LeadID = leadID
	event.LeadName = ""
}
