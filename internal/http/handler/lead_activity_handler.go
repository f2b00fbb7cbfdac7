package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/straye-as/sales-dashboard/internal/service"
	"go.uber.org/zap"
)

// LeadActivityHandler handles HTTP requests for lead activities
type LeadActivityHandler struct {
	activityService *service.LeadActivityService
	logger          *zap.Logger
}

// NewLeadActivityHandler creates a new lead activity handler instance
func NewLeadActivityHandler(activityService *service.LeadActivityService, logger *zap.Logger) *LeadActivityHandler {
	return &LeadActivityHandler{
		activityService: activityService,
		logger:          logger,
	}
}

// List godoc
// @Summary List lead activities
// @Description List activities, newest first, optionally for a single lead
// @Tags Lead Activities
// @Produce json
// @Param lead_id query string false "Lead ID" format(uuid)
// @Param id query string false "Activity ID" format(uuid)
// @Success 200 {array} domain.LeadActivityDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /lead_activities [get]
func (h *LeadActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			respondIDError(w, err, "Activity")
			return
		}
		activity, err := h.activityService.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrLeadActivityNotFound) {
				respondJSON(w, http.StatusOK, []domain.LeadActivityDTO{})
				return
			}
			respondServiceError(w, h.logger, err, "get lead activity")
			return
		}
		respondJSON(w, http.StatusOK, []domain.LeadActivityDTO{*activity})
		return
	}

	var leadID *uuid.UUID
	if raw := r.URL.Query().Get("lead_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			respondIDError(w, err, "Lead")
			return
		}
		leadID = &id
	}

	activities, err := h.activityService.List(r.Context(), leadID)
	if err != nil {
		respondServiceError(w, h.logger, err, "list lead activities")
		return
	}
	respondJSON(w, http.StatusOK, activities)
}

// Create godoc
// @Summary Create lead activity
// @Tags Lead Activities
// @Accept json
// @Produce json
// @Param request body domain.CreateLeadActivityRequest true "Activity data"
// @Success 201 {object} domain.MutationResponse
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /lead_activities [post]
func (h *LeadActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLeadActivityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	activity, err := h.activityService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create lead activity")
		return
	}

	respondJSON(w, http.StatusCreated, domain.MutationResponse{
		ID:      &activity.ID,
		Message: "Activity added successfully",
	})
}

// Update godoc
// @Summary Update lead activity
// @Tags Lead Activities
// @Accept json
// @Produce json
// @Param request body domain.UpdateLeadActivityRequest true "Activity data with id"
// @Success 200 {object} domain.MutationResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /lead_activities [put]
func (h *LeadActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateLeadActivityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, err := parseID(req.ID)
	if err != nil {
		respondIDError(w, err, "Activity")
		return
	}

	if _, err := h.activityService.Update(r.Context(), id, &req.CreateLeadActivityRequest); err != nil {
		respondServiceError(w, h.logger, err, "update lead activity")
		return
	}

	respondJSON(w, http.StatusOK, domain.MutationResponse{Message: "Activity updated successfully"})
}

// Delete godoc
// @Summary Delete lead activity
// @Tags Lead Activities
// @Produce json
// @Param id query string true "Activity ID" format(uuid)
// @Success 200 {object} domain.MutationResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /lead_activities [delete]
func (h *LeadActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Query().Get("id"))
	if err != nil {
		respondIDError(w, err, "Activity")
		return
	}

	if err := h.activityService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete lead activity")
		return
	}

	respondJSON(w, http.StatusOK, domain.MutationResponse{Message: "Activity deleted successfully"})
}
