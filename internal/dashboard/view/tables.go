// Package view renders cached rows into document containers. Every renderer
// takes its rows as an argument and replaces its container whole.
package view

import (
	"github.com/shopspring/decimal"
	"github.com/straye-as/sales-dashboard/internal/dashboard/sorting"
	"github.com/straye-as/sales-dashboard/internal/dashboard/ui"
	"github.com/straye-as/sales-dashboard/internal/domain"
)

// Container ids
const (
	LeadsTable             = "leads-table"
	LeadStatsCards         = "lead-stats"
	LeadStageChart         = "lead-stage-chart"
	UpcomingFollowUpsList  = "upcoming-follow-ups"
	LeadDetailPanel        = "lead-detail"
	LeadActivitiesTable    = "lead-activities-table"
	GeneralExpensesTable   = "general-expenses-table"
	CalendarEventsTable    = "calendar-events-table"
	CalendarGrid           = "calendar"
	ExpenditureReportTable = "expenditure-report-table"
)

// NoData is the placeholder text of an empty table
const NoData = "No data available"

type header struct {
	label string
	key   string // sort key; empty when the column is not sortable
}

func table(title string, headers []header, state sorting.State, rows []ui.Row) ui.Content {
	c := ui.Content{Title: title}
	for _, h := range headers {
		c.Headers = append(c.Headers, h.label)
		indicator := ""
		if h.key != "" {
			indicator = state.Indicator(h.key)
		}
		c.Indicators = append(c.Indicators, indicator)
		c.SortKeys = append(c.SortKeys, h.key)
	}
	if len(rows) == 0 {
		rows = []ui.Row{{Cells: []string{NoData}, Placeholder: true}}
	}
	c.Rows = rows
	return c
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func dateCell(d *domain.Date) string {
	if d == nil || d.IsZero() {
		return "N/A"
	}
	return d.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func idParams(id string) map[string]string {
	return map[string]string{"id": id}
}

var leadHeaders = []header{
	{"Name", "name"}, {"Company", "company"}, {"Stage", "stage"}, {"Email", "email"},
	{"Phone", "phone"}, {"Date of Contact", "dateOfContact"}, {"Follow Up", "followUp"}, {"Actions", ""},
}

// LeadColumns are the sortable columns of the leads table
var LeadColumns = []sorting.Column[domain.LeadDTO]{
	{Key: "name", Type: sorting.Text, Value: func(l domain.LeadDTO) string { return l.FullName() }},
	{Key: "company", Type: sorting.Text, Value: func(l domain.LeadDTO) string { return l.Company }},
	{Key: "stage", Type: sorting.Text, Value: func(l domain.LeadDTO) string { return string(l.Stage) }},
	{Key: "email", Type: sorting.Text, Value: func(l domain.LeadDTO) string { return l.Email }},
	{Key: "phone", Type: sorting.Text, Value: func(l domain.LeadDTO) string { return l.Phone }},
	{Key: "dateOfContact", Type: sorting.Date, Value: func(l domain.LeadDTO) string { return l.DateOfContact.String() }},
	{Key: "followUp", Type: sorting.Date, Value: func(l domain.LeadDTO) string { return dateString(l.FollowUp) }},
}

func dateString(d *domain.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// RenderLeads draws the leads table
func RenderLeads(doc *ui.Document, leads []domain.LeadDTO, state sorting.State) {
	rows := make([]ui.Row, 0, len(leads))
	for _, l := range leads {
		id := l.ID.String()
		rows = append(rows, ui.Row{
			Key: id,
			Cells: []string{
				l.FullName(), l.Company, string(l.Stage), l.Email, l.Phone,
				l.DateOfContact.String(), dateCell(l.FollowUp),
			},
			Actions: []ui.Action{
				{Name: "view_lead", Label: "View", Params: idParams(id)},
				{Name: "edit_lead", Label: "Edit", Params: idParams(id)},
				{Name: "delete_lead", Label: "Delete", Params: idParams(id)},
			},
		})
	}
	doc.Replace(LeadsTable, table("Leads", leadHeaders, state, rows))
}

var activityHeaders = []header{
	{"Date", "activity_date"}, {"Lead", ""}, {"Type", "activity_type"},
	{"Description", "description"}, {"Expenditure", "expenditure"}, {"Actions", ""},
}

// ActivityColumns are the sortable columns of an activities table
var ActivityColumns = []sorting.Column[domain.LeadActivityDTO]{
	{Key: "activity_date", Type: sorting.Date, Value: func(a domain.LeadActivityDTO) string { return a.ActivityDate.String() }},
	{Key: "activity_type", Type: sorting.Text, Value: func(a domain.LeadActivityDTO) string { return string(a.ActivityType) }},
	{Key: "description", Type: sorting.Text, Value: func(a domain.LeadActivityDTO) string { return a.Description }},
	{Key: "expenditure", Type: sorting.Number, Value: func(a domain.LeadActivityDTO) string { return a.Expenditure.String() }},
}

// RenderActivities draws activities into container; leadNames resolves the weak lead reference
func RenderActivities(doc *ui.Document, container string, activities []domain.LeadActivityDTO, leadNames map[string]string, state sorting.State) {
	rows := make([]ui.Row, 0, len(activities))
	for _, a := range activities {
		id := a.ID.String()
		rows = append(rows, ui.Row{
			Key: id,
			Cells: []string{
				a.ActivityDate.String(), orNA(leadNames[a.LeadID.String()]), string(a.ActivityType),
				a.Description, money(a.Expenditure),
			},
			Actions: []ui.Action{
				{Name: "edit_lead_activity", Label: "Edit", Params: idParams(id)},
				{Name: "delete_lead_activity", Label: "Delete", Params: idParams(id)},
			},
		})
	}
	doc.Replace(container, table("Activities", activityHeaders, state, rows))
}

var expenseHeaders = []header{
	{"Date", "date"}, {"Description", "description"}, {"Amount", "amount"}, {"Actions", ""},
}

// ExpenseColumns are the sortable columns of the general expenses table
var ExpenseColumns = []sorting.Column[domain.GeneralExpenseDTO]{
	{Key: "date", Type: sorting.Date, Value: func(e domain.GeneralExpenseDTO) string { return e.Date.String() }},
	{Key: "description", Type: sorting.Text, Value: func(e domain.GeneralExpenseDTO) string { return e.Description }},
	{Key: "amount", Type: sorting.Number, Value: func(e domain.GeneralExpenseDTO) string { return e.Amount.String() }},
}

// RenderGeneralExpenses draws the general expenses table
func RenderGeneralExpenses(doc *ui.Document, expenses []domain.GeneralExpenseDTO, state sorting.State) {
	rows := make([]ui.Row, 0, len(expenses))
	for _, e := range expenses {
		id := e.ID.String()
		rows = append(rows, ui.Row{
			Key:   id,
			Cells: []string{e.Date.String(), e.Description, money(e.Amount)},
			Actions: []ui.Action{
				{Name: "edit_general_expense", Label: "Edit", Params: idParams(id)},
				{Name: "delete_general_expense", Label: "Delete", Params: idParams(id)},
			},
		})
	}
	doc.Replace(GeneralExpensesTable, table("General Expenses", expenseHeaders, state, rows))
}

var eventHeaders = []header{
	{"Date", "date"}, {"End", "end_date"}, {"Type", "type"}, {"Lead", "lead_name"},
	{"Description", "description"}, {"Amount", "amount"}, {"Actions", ""},
}

// EventColumns are the sortable columns of the calendar events table
var EventColumns = []sorting.Column[domain.CalendarEventDTO]{
	{Key: "date", Type: sorting.Date, Value: func(e domain.CalendarEventDTO) string { return e.Date.String() }},
	{Key: "end_date", Type: sorting.Date, Value: func(e domain.CalendarEventDTO) string { return dateString(e.EndDate) }},
	{Key: "type", Type: sorting.Text, Value: func(e domain.CalendarEventDTO) string { return string(e.Type) }},
	{Key: "lead_name", Type: sorting.Text, Value: func(e domain.CalendarEventDTO) string { return e.LeadName }},
	{Key: "description", Type: sorting.Text, Value: func(e domain.CalendarEventDTO) string { return e.Description }},
	{Key: "amount", Type: sorting.Number, Value: func(e domain.CalendarEventDTO) string { return e.Amount.String() }},
}

// RenderCalendarEvents draws the calendar events table
func RenderCalendarEvents(doc *ui.Document, events []domain.CalendarEventDTO, state sorting.State) {
	rows := make([]ui.Row, 0, len(events))
	for _, e := range events {
		id := e.ID.String()
		rows = append(rows, ui.Row{
			Key: id,
			Cells: []string{
				e.Date.String(), dateCell(e.EndDate), string(e.Type), orNA(e.LeadName),
				e.Description, money(e.Amount),
			},
			Actions: []ui.Action{
				{Name: "edit_calendar_event", Label: "Edit", Params: idParams(id)},
				{Name: "delete_calendar_event", Label: "Delete", Params: idParams(id)},
			},
		})
	}
	doc.Replace(CalendarEventsTable, table("Calendar Events", eventHeaders, state, rows))
}
