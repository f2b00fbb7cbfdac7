package handler

import (
	"errors"
	"net/http"

	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/straye-as/sales-dashboard/internal/service"
	"go.uber.org/zap"
)

// GeneralExpenseHandler handles HTTP requests for expenses not tied to a lead
type GeneralExpenseHandler struct {
	expenseService     *service.GeneralExpenseService
	expenditureService *service.ExpenditureService
	logger             *zap.Logger
}

// NewGeneralExpenseHandler creates a new general expense handler instance
func NewGeneralExpenseHandler(
	expenseService *service.GeneralExpenseService,
	expenditureService *service.ExpenditureService,
	logger *zap.Logger,
) *GeneralExpenseHandler {
	return &GeneralExpenseHandler{
		expenseService:     expenseService,
		expenditureService: expenditureService,
		logger:             logger,
	}
}

// List godoc
// @Summary List general expenses
// @Tags General Expenses
// @Produce json
// @Param id query string false "Expense ID" format(uuid)
// @Success 200 {array} domain.GeneralExpenseDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /general_expenses [get]
func (h *GeneralExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			respondIDError(w, err, "Expense")
			return
		}
		expense, err := h.expenseService.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrGeneralExpenseNotFound) {
				respondJSON(w, http.StatusOK, []domain.GeneralExpenseDTO{})
				return
			}
			respondServiceError(w, h.logger, err, "get general expense")
			return
		}
		respondJSON(w, http.StatusOK, []domain.GeneralExpenseDTO{*expense})
		return
	}

	expenses, err := h.expenseService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "list general expenses")
		return
	}
	respondJSON(w, http.StatusOK, expenses)
}

// Create godoc
// @Summary Create general expense
// @Tags General Expenses
// @Accept json
// @Produce json
// @Param request body domain.CreateGeneralExpenseRequest true "Expense data"
// @Success 201 {object} domain.MutationResponse
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /general_expenses [post]
func (h *GeneralExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateGeneralExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	expense, err := h.expenseService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create general expense")
		return
	}

	respondJSON(w, http.StatusCreated, domain.MutationResponse{
		ID:      &expense.ID,
		Message: "Expense added successfully",
	})
}

// Update godoc
// @Summary Update general expense
// @Tags General Expenses
// @Accept json
// @Produce json
// @Param request body domain.UpdateGeneralExpenseRequest true "Expense data with id"
// @Success 200 {object} domain.MutationResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /general_expenses [put]
func (h *GeneralExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateGeneralExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, err := parseID(req.ID)
	if err != nil {
		respondIDError(w, err, "Expense")
		return
	}

	if _, err := h.expenseService.Update(r.Context(), id, &req.CreateGeneralExpenseRequest); err != nil {
		respondServiceError(w, h.logger, err, "update general expense")
		return
	}

	respondJSON(w, http.StatusOK, domain.MutationResponse{Message: "Expense updated successfully"})
}

// Delete godoc
// @Summary Delete general expense
// @Tags General Expenses
// @Produce json
// @Param id query string true "Expense ID" format(uuid)
// @Success 200 {object} domain.MutationResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /general_expenses [delete]
func (h *GeneralExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Query().Get("id"))
	if err != nil {
		respondIDError(w, err, "Expense")
		return
	}

	if err := h.expenseService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete general expense")
		return
	}

	respondJSON(w, http.StatusOK, domain.MutationResponse{Message: "Expense deleted successfully"})
}

// AddExpenditure godoc
// @Summary Add expenditure (legacy)
// @Description Accepts the single-table expenditure payload. Without lead_id a
// @Description general expense is created, otherwise a general_expense calendar event for the lead.
// @Tags General Expenses
// @Accept json
// @Produce json
// @Param request body domain.AddExpenditureRequest true "Expenditure data"
// @Success 201 {object} domain.MutationResponse
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /add_expenditure [post]
func (h *GeneralExpenseHandler) AddExpenditure(w http.ResponseWriter, r *http.Request) {
	var req domain.AddExpenditureRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.expenditureService.Add(r.Context(), &req); err != nil {
		respondServiceError(w, h.logger, err, "add expenditure")
		return
	}

	respondJSON(w, http.StatusCreated, domain.MutationResponse{Message: "Expenditure added successfully"})
}
