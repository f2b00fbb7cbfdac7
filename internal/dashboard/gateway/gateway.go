// Package gateway is the dashboard's typed client for the REST backend.
package gateway

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/straye-as/sales-dashboard/internal/export"
)

// Gateway groups the per-entity resources of the backend
type Gateway struct {
	client *Client

	Leads           *Resource[domain.LeadDTO]
	LeadActivities  *Resource[domain.LeadActivityDTO]
	GeneralExpenses *Resource[domain.GeneralExpenseDTO]
	CalendarEvents  *Resource[domain.CalendarEventDTO]
	ExpenditureRows *Resource[domain.ExpenditureReportRowDTO]
}

// New creates a gateway over client
func New(client *Client) *Gateway {
	return &Gateway{
		client:          client,
		Leads:           NewResource[domain.LeadDTO](client, "lead", "/api/leads"),
		LeadActivities:  NewResource[domain.LeadActivityDTO](client, "lead activity", "/api/lead_activities"),
		GeneralExpenses: NewResource[domain.GeneralExpenseDTO](client, "general expense", "/api/general_expenses"),
		CalendarEvents:  NewResource[domain.CalendarEventDTO](client, "calendar event", "/api/calendar_events"),
		ExpenditureRows: NewResource[domain.ExpenditureReportRowDTO](client, "expenditure report row", "/api/expenditure_report"),
	}
}

// DateRangeQuery encodes a range as start_date/end_date. The backend filters
// only when both are present.
func DateRangeQuery(r domain.DateRange) url.Values {
	q := url.Values{}
	if r.StartDate != nil {
		q.Set("start_date", r.StartDate.String())
	}
	if r.EndDate != nil {
		q.Set("end_date", r.EndDate.String())
	}
	return q
}

// ExpenditureReport lists report rows in the range
func (g *Gateway) ExpenditureReport(ctx context.Context, r domain.DateRange) ([]domain.ExpenditureReportRowDTO, error) {
	return g.ExpenditureRows.List(ctx, DateRangeQuery(r))
}

// ExportLeads streams the leads export to w and returns the Content-Disposition header
func (g *Gateway) ExportLeads(ctx context.Context, format export.Format, w io.Writer) (string, error) {
	return g.client.download(ctx, "/api/export_leads", url.Values{"format": {string(format)}}, w)
}

// ExportExpenditureReport streams the report export to w
func (g *Gateway) ExportExpenditureReport(ctx context.Context, r domain.DateRange, format export.Format, w io.Writer) (string, error) {
	q := DateRangeQuery(r)
	q.Set("format", string(format))
	return g.client.download(ctx, "/api/export_expenditure_report", q, w)
}

// Bootstrap fetches the browser bootstrap configuration
func (g *Gateway) Bootstrap(ctx context.Context) (domain.ClientBootstrapDTO, error) {
	var out domain.ClientBootstrapDTO
	err := g.client.do(ctx, http.MethodGet, "/api/firebase_config", nil, nil, &out)
	return out, err
}
