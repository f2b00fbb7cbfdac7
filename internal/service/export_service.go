package service

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/straye-as/sales-dashboard/internal/export"
	"go.uber.org/zap"
)

const notAvailable = "N/A"

// Export file base names
const (
	LeadsExportName             = "leads_export"
	ExpenditureReportExportName = "expenditure_report_export"
)

var (
	leadExportHeaders = []string{
		"ID", "First Name", "Last Name", "Title", "Company", "Email", "Phone",
		"Product", "Stage", "Date of Contact", "Follow Up", "Notes", "Created At",
	}
	expenditureExportHeaders = []string{
		"Date", "Type/Category", "Description", "Amount (KSh)", "Lead Name", "Company",
	}
)

type ExportService struct {
	leadService   *LeadService
	reportService *ReportService
	logger        *zap.Logger
}

func NewExportService(leadService *LeadService, reportService *ReportService, logger *zap.Logger) *ExportService {
	return &ExportService{
		leadService:   leadService,
		reportService: reportService,
		logger:        logger,
	}
}

// ExportLeads writes every lead to w
func (s *ExportService) ExportLeads(ctx context.Context, format export.Format, w io.Writer) error {
	leads, err := s.leadService.List(ctx)
	if err != nil {
		return err
	}

	table := &export.Table{Sheet: "Leads", Headers: leadExportHeaders}
	for _, lead := range leads {
		followUp := ""
		if lead.FollowUp != nil {
			followUp = lead.FollowUp.String()
		}
		table.Append(
			lead.ID.String(),
			lead.FirstName,
			lead.LastName,
			lead.Title,
			lead.Company,
			lead.Email,
			lead.Phone,
			lead.Product,
			string(lead.Stage),
			lead.DateOfContact.String(),
			followUp,
			lead.Notes,
			lead.CreatedAt,
		)
	}

	if err := export.Write(w, format, table); err != nil {
		return fmt.Errorf("failed to write leads export: %w", err)
	}
	s.logger.Info("leads exported", zap.Int("rows", len(leads)), zap.String("format", string(format)))
	return nil
}

// ExportExpenditureReport writes the report rows in the range to w, oldest first
func (s *ExportService) ExportExpenditureReport(ctx context.Context, dateRange domain.DateRange, format export.Format, w io.Writer) (int, error) {
	rows, err := s.reportService.ExpenditureReport(ctx, dateRange)
	if err != nil {
		return 0, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	table := &export.Table{Sheet: "Expenditure Report", Headers: expenditureExportHeaders}
	for _, row := range rows {
		table.Append(
			row.Date.String(),
			orNotAvailable(row.TypeCategory),
			orNotAvailable(row.Description),
			row.Amount,
			orNotAvailable(row.LeadName),
			orNotAvailable(row.Company),
		)
	}

	if err := export.Write(w, format, table); err != nil {
		return 0, fmt.Errorf("failed to write expenditure export: %w", err)
	}
	s.logger.Info("expenditure report exported", zap.Int("rows", len(rows)), zap.String("format", string(format)))
	return len(rows), nil
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
