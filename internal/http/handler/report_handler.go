package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/straye-as/sales-dashboard/internal/export"
	"github.com/straye-as/sales-dashboard/internal/service"
	"go.uber.org/zap"
)

// ReportHandler serves the expenditure report and file exports
type ReportHandler struct {
	reportService *service.ReportService
	exportService *service.ExportService
	logger        *zap.Logger
}

// NewReportHandler creates a new report handler instance
func NewReportHandler(
	reportService *service.ReportService,
	exportService *service.ExportService,
	logger *zap.Logger,
) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		exportService: exportService,
		logger:        logger,
	}
}

// ExpenditureReport godoc
// @Summary Expenditure report
// @Description Union of general expenses, calendar events with an amount and
// @Description lead activities with an expenditure. Each row names its source_table.
// @Description The date filter applies only when both start_date and end_date are given.
// @Tags Reports
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} domain.ExpenditureReportRowDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /expenditure_report [get]
func (h *ReportHandler) ExpenditureReport(w http.ResponseWriter, r *http.Request) {
	dateRange, err := parseDateRange(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, capitalize(err.Error()))
		return
	}

	rows, err := h.reportService.ExpenditureReport(r.Context(), dateRange)
	if err != nil {
		respondServiceError(w, h.logger, err, "build expenditure report")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// ExportLeads godoc
// @Summary Export leads
// @Tags Reports
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "File format" Enums(csv, xlsx) default(csv)
// @Success 200 {file} file
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /export_leads [get]
func (h *ReportHandler) ExportLeads(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, capitalize(err.Error()))
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.ExportLeads(r.Context(), format, &buf); err != nil {
		respondServiceError(w, h.logger, err, "export leads")
		return
	}

	respondFile(w, format, service.LeadsExportName, &buf)
}

// ExportExpenditureReport godoc
// @Summary Export expenditure report
// @Description Report rows oldest first with missing values written as N/A
// @Tags Reports
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param format query string false "File format" Enums(csv, xlsx) default(csv)
// @Success 200 {file} file
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /export_expenditure_report [get]
func (h *ReportHandler) ExportExpenditureReport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, capitalize(err.Error()))
		return
	}
	dateRange, err := parseDateRange(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, capitalize(err.Error()))
		return
	}

	var buf bytes.Buffer
	if _, err := h.exportService.ExportExpenditureReport(r.Context(), dateRange, format, &buf); err != nil {
		respondServiceError(w, h.logger, err, "export expenditure report")
		return
	}

	respondFile(w, format, service.ExpenditureReportExportName, &buf)
}

// respondFile sends buf as a download attachment
func respondFile(w http.ResponseWriter, format export.Format, base string, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", format.Filename(base)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
