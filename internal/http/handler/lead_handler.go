package handler

import (
	"errors"
	"net/http"

	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/straye-as/sales-dashboard/internal/service"
	"go.uber.org/zap"
)

// LeadHandler handles HTTP requests for lead operations
type LeadHandler struct {
	leadService *service.LeadService
	logger      *zap.Logger
}

// NewLeadHandler creates a new lead handler instance
func NewLeadHandler(leadService *service.LeadService, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
		logger:      logger,
	}
}

// List godoc
// @Summary List leads
// @Description List all leads, newest first. With id the result holds at most that lead.
// @Tags Leads
// @Produce json
// @Param id query string false "Lead ID" format(uuid)
// @Success 200 {array} domain.LeadDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /leads [get]
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			respondIDError(w, err, "Lead")
			return
		}
		lead, err := h.leadService.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrLeadNotFound) {
				respondJSON(w, http.StatusOK, []domain.LeadDTO{})
				return
			}
			respondServiceError(w, h.logger, err, "get lead")
			return
		}
		respondJSON(w, http.StatusOK, []domain.LeadDTO{*lead})
		return
	}

	leads, err := h.leadService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "list leads")
		return
	}
	respondJSON(w, http.StatusOK, leads)
}

// Create godoc
// @Summary Create lead
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body domain.CreateLeadRequest true "Lead data"
// @Success 201 {object} domain.MutationResponse
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /leads [post]
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLeadRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lead, err := h.leadService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create lead")
		return
	}

	respondJSON(w, http.StatusCreated, domain.MutationResponse{
		ID:      &lead.ID,
		Message: "Lead added successfully",
	})
}

// Update godoc
// @Summary Update lead
// @Description Replace a lead. The id travels in the body.
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body domain.UpdateLeadRequest true "Lead data with id"
// @Success 200 {object} domain.MutationResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /leads [put]
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateLeadRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, err := parseID(req.ID)
	if err != nil {
		respondIDError(w, err, "Lead")
		return
	}

	if _, err := h.leadService.Update(r.Context(), id, &req.CreateLeadRequest); err != nil {
		respondServiceError(w, h.logger, err, "update lead")
		return
	}

	respondJSON(w, http.StatusOK, domain.MutationResponse{Message: "Lead updated successfully"})
}

// Delete godoc
// @Summary Delete lead
// @Description Delete a lead with its activities and calendar events
// @Tags Leads
// @Produce json
// @Param id query string true "Lead ID" format(uuid)
// @Success 200 {object} domain.MutationResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /leads [delete]
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Query().Get("id"))
	if err != nil {
		respondIDError(w, err, "Lead")
		return
	}

	if err := h.leadService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete lead")
		return
	}

	respondJSON(w, http.StatusOK, domain.MutationResponse{Message: "Lead deleted successfully"})
}
