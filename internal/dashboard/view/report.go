package view

import (
	"github.com/shopspring/decimal"
	"github.com/straye-as/sales-dashboard/internal/dashboard/sorting"
	"github.com/straye-as/sales-dashboard/internal/dashboard/ui"
	"github.com/straye-as/sales-dashboard/internal/domain"
)

var reportHeaders = []header{
	{"Date", "date"}, {"Type/Category", "type_category"}, {"Description", "description"},
	{"Amount (KSh)", "amount"}, {"Lead Name", "lead_name"}, {"Company", "company"},
	{"Source", "source_table"}, {"Actions", ""},
}

// ReportColumns are the sortable columns of the expenditure report
var ReportColumns = []sorting.Column[domain.ExpenditureReportRowDTO]{
	{Key: "date", Type: sorting.Date, Value: func(r domain.ExpenditureReportRowDTO) string { return r.Date.String() }},
	{Key: "type_category", Type: sorting.Text, Value: func(r domain.ExpenditureReportRowDTO) string { return r.TypeCategory }},
	{Key: "description", Type: sorting.Text, Value: func(r domain.ExpenditureReportRowDTO) string { return r.Description }},
	{Key: "amount", Type: sorting.Number, Value: func(r domain.ExpenditureReportRowDTO) string { return r.Amount.String() }},
	{Key: "lead_name", Type: sorting.Text, Value: func(r domain.ExpenditureReportRowDTO) string { return r.LeadName }},
	{Key: "company", Type: sorting.Text, Value: func(r domain.ExpenditureReportRowDTO) string { return r.Company }},
	{Key: "source_table", Type: sorting.Text, Value: func(r domain.ExpenditureReportRowDTO) string { return string(r.SourceTable) }},
}

// RowActions routes edit and delete of a report row to the entity it came from
func RowActions(row domain.ExpenditureReportRowDTO) []ui.Action {
	var entity string
	switch row.SourceTable {
	case domain.ReportSourceGeneralExpenses:
		entity = "general_expense"
	case domain.ReportSourceCalendarEvents:
		entity = "calendar_event"
	case domain.ReportSourceLeadActivities:
		entity = "lead_activity"
	default:
		return nil
	}
	id := row.ID.String()
	return []ui.Action{
		{Name: "edit_" + entity, Label: "Edit", Params: idParams(id)},
		{Name: "delete_" + entity, Label: "Delete", Params: idParams(id)},
	}
}

// Total sums row amounts
func Total(rows []domain.ExpenditureReportRowDTO) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Amount)
	}
	return total
}

// RenderExpenditureReport draws report rows with a total line
func RenderExpenditureReport(doc *ui.Document, rows []domain.ExpenditureReportRowDTO, filter domain.DateRange, state sorting.State) {
	out := make([]ui.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, ui.Row{
			Key: string(r.SourceTable) + ":" + r.ID.String(),
			Cells: []string{
				r.Date.String(), orNA(r.TypeCategory), orNA(r.Description), money(r.Amount),
				orNA(r.LeadName), orNA(r.Company), string(r.SourceTable),
			},
			Actions: RowActions(r),
		})
	}

	title := "Expenditure Report"
	if filter.IsSet() {
		title += " (" + filter.StartDate.String() + " to " + filter.EndDate.String() + ")"
	}
	content := table(title, reportHeaders, state, out)
	content.Footer = []string{"Total Expenditure", money(Total(rows))}
	doc.Replace(ExpenditureReportTable, content)
}
