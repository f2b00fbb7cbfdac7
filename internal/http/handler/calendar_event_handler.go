package handler

import (
	"errors"
	"net/http"

	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/straye-as/sales-dashboard/internal/service"
	"go.uber.org/zap"
)

// CalendarEventHandler handles HTTP requests for calendar events
type CalendarEventHandler struct {
	eventService *service.CalendarEventService
	logger       *zap.Logger
}

// NewCalendarEventHandler creates a new calendar event handler instance
func NewCalendarEventHandler(eventService *service.CalendarEventService, logger *zap.Logger) *CalendarEventHandler {
	return &CalendarEventHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// List godoc
// @Summary List calendar events
// @Description List events by date with the linked lead's name
// @Tags Calendar
// @Produce json
// @Param id query string false "Event ID" format(uuid)
// @Success 200 {array} domain.CalendarEventDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /calendar_events [get]
func (h *CalendarEventHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			respondIDError(w, err, "Event")
			return
		}
		event, err := h.eventService.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrCalendarEventNotFound) {
				respondJSON(w, http.StatusOK, []domain.CalendarEventDTO{})
				return
			}
			respondServiceError(w, h.logger, err, "get calendar event")
			return
		}
		respondJSON(w, http.StatusOK, []domain.CalendarEventDTO{*event})
		return
	}

	events, err := h.eventService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "list calendar events")
		return
	}
	respondJSON(w, http.StatusOK, events)
}

// Create godoc
// @Summary Create calendar event
// @Description A follow_up event linked to a lead also moves the lead's follow-up date
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body domain.CreateCalendarEventRequest true "Event data"
// @Success 201 {object} domain.MutationResponse
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /calendar_events [post]
func (h *CalendarEventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCalendarEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event, err := h.eventService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create calendar event")
		return
	}

	respondJSON(w, http.StatusCreated, domain.MutationResponse{
		ID:      &event.ID,
		Message: "Event added successfully",
	})
}

// Update godoc
// @Summary Update calendar event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body domain.UpdateCalendarEventRequest true "Event data with id"
// @Success 200 {object} domain.MutationResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /calendar_events [put]
func (h *CalendarEventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateCalendarEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, err := parseID(req.ID)
	if err != nil {
		respondIDError(w, err, "Event")
		return
	}

	if _, err := h.eventService.Update(r.Context(), id, &req.CreateCalendarEventRequest); err != nil {
		respondServiceError(w, h.logger, err, "update calendar event")
		return
	}

	respondJSON(w, http.StatusOK, domain.MutationResponse{Message: "Event updated successfully"})
}

// Delete godoc
// @Summary Delete calendar event
// @Tags Calendar
// @Produce json
// @Param id query string true "Event ID" format(uuid)
// @Success 200 {object} domain.MutationResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /calendar_events [delete]
func (h *CalendarEventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Query().Get("id"))
	if err != nil {
		respondIDError(w, err, "Event")
		return
	}

	if err := h.eventService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete calendar event")
		return
	}

	respondJSON(w, http.StatusOK, domain.MutationResponse{Message: "Event deleted successfully"})
}
