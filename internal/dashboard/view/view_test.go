package view_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/straye-as/sales-dashboard/internal/dashboard/sorting"
	"github.com/straye-as/sales-dashboard/internal/dashboard/ui"
	"github.com/straye-as/sales-dashboard/internal/dashboard/view"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(y int, m time.Month, d int) *domain.Date {
	date := domain.NewDate(y, m, d)
	return &date
}

func lead(first string, stage domain.LeadStage, followUp *domain.Date) domain.LeadDTO {
	return domain.LeadDTO{
		ID:            uuid.New(),
		FirstName:     first,
		Company:       "Acme",
		Stage:         stage,
		DateOfContact: domain.NewDate(2024, time.January, 10),
		FollowUp:      followUp,
	}
}

func TestRenderLeads_IdempotentAndWholesale(t *testing.T) {
	doc := ui.NewDocument()
	leads := []domain.LeadDTO{lead("Ama", domain.LeadStageNew, nil), lead("Kofi", domain.LeadStageQualified, datePtr(2024, time.May, 1))}

	view.RenderLeads(doc, leads, sorting.State{})
	first, _ := doc.Content(view.LeadsTable)
	view.RenderLeads(doc, leads, sorting.State{})
	second, _ := doc.Content(view.LeadsTable)

	assert.Equal(t, first, second)
	require.Len(t, second.Rows, 2)
	assert.Equal(t, "N/A", second.Rows[0].Cells[6])
	assert.Equal(t, "2024-05-01", second.Rows[1].Cells[6])
	assert.Equal(t, []string{"view_lead", "edit_lead", "delete_lead"}, actionNames(second.Rows[0].Actions))
	assert.Equal(t, leads[0].ID.String(), second.Rows[0].Actions[1].Params["id"])

	view.RenderLeads(doc, leads[:1], sorting.State{})
	third, _ := doc.Content(view.LeadsTable)
	assert.Len(t, third.Rows, 1, "the container is replaced, never appended to")
}

func actionNames(actions []ui.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.Name
	}
	return out
}

func TestRenderLeads_EmptyPlaceholderAndIndicators(t *testing.T) {
	doc := ui.NewDocument()
	view.RenderLeads(doc, nil, sorting.State{Key: "company", Desc: true})

	content, ok := doc.Content(view.LeadsTable)
	require.True(t, ok)
	require.Len(t, content.Rows, 1)
	assert.True(t, content.Rows[0].Placeholder)
	assert.Equal(t, []string{view.NoData}, content.Rows[0].Cells)

	require.Equal(t, len(content.Headers), len(content.Indicators))
	assert.Equal(t, "Company", content.Headers[1])
	assert.Equal(t, sorting.IndicatorDesc, content.Indicators[1])
	assert.Empty(t, content.Indicators[0])
	assert.Equal(t, "company", content.SortKeys[1])
	assert.Empty(t, content.SortKeys[len(content.SortKeys)-1], "actions column is not sortable")
}

func TestComputeLeadStats(t *testing.T) {
	leads := []domain.LeadDTO{
		lead("a", domain.LeadStageNew, nil),
		lead("b", domain.LeadStageNew, nil),
		lead("c", domain.LeadStageQualified, nil),
		lead("d", domain.LeadStageClosedWon, nil),
		lead("e", domain.LeadStageProposal, nil),
	}

	stats := view.ComputeLeadStats(leads)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.New)
	assert.Equal(t, 1, stats.Qualified)
	assert.Equal(t, 1, stats.ClosedWon)
	assert.Equal(t, 0, stats.ClosedLost)

	points := view.ChartPoints(stats)
	require.Len(t, points, len(domain.LeadStages))
	assert.Equal(t, view.ChartPoint{Label: "New", Value: 2}, points[0])
	assert.Equal(t, view.ChartPoint{Label: "Proposal", Value: 1}, points[3])
	assert.Equal(t, view.ChartPoint{Label: "Closed Lost", Value: 0}, points[6])
}

func TestUpcomingFollowUps(t *testing.T) {
	today := time.Date(2024, time.May, 10, 15, 30, 0, 0, time.UTC)
	leads := []domain.LeadDTO{
		lead("later", domain.LeadStageNew, datePtr(2024, time.June, 1)),
		lead("past", domain.LeadStageNew, datePtr(2024, time.May, 9)),
		lead("none", domain.LeadStageNew, nil),
		lead("today", domain.LeadStageNew, datePtr(2024, time.May, 10)),
		lead("soon", domain.LeadStageNew, datePtr(2024, time.May, 12)),
	}

	upcoming := view.UpcomingFollowUps(leads, today)
	names := make([]string, len(upcoming))
	for i, l := range upcoming {
		names[i] = l.FirstName
	}
	assert.Equal(t, []string{"today", "soon", "later"}, names)

	doc := ui.NewDocument()
	view.RenderUpcomingFollowUps(doc, leads[1:3], today)
	content, _ := doc.Content(view.UpcomingFollowUpsList)
	require.Len(t, content.Rows, 1)
	assert.True(t, content.Rows[0].Placeholder)
}

type recordingChart struct{ points [][]view.ChartPoint }

func (c *recordingChart) SetData(points []view.ChartPoint) { c.points = append(c.points, points) }

func TestRenderLeadDashboard(t *testing.T) {
	doc := ui.NewDocument()
	chart := &recordingChart{}
	leads := []domain.LeadDTO{lead("a", domain.LeadStageNew, datePtr(2030, time.January, 1))}

	view.RenderLeadDashboard(doc, chart, leads, time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC))

	cards, ok := doc.Content(view.LeadStatsCards)
	require.True(t, ok)
	assert.Equal(t, []string{"Total Leads", "1"}, cards.Rows[0].Cells)
	require.Len(t, chart.points, 1)
	assert.Equal(t, 1, chart.points[0][0].Value)
	followUps, _ := doc.Content(view.UpcomingFollowUpsList)
	assert.Len(t, followUps.Rows, 1)
	assert.False(t, followUps.Rows[0].Placeholder)

	view.NewDocumentChart(doc, view.LeadStageChart).SetData(view.ChartPoints(view.ComputeLeadStats(leads)))
	bars, _ := doc.Content(view.LeadStageChart)
	assert.Len(t, bars.Rows, len(domain.LeadStages))
}

func TestRowActions_RouteBySource(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		source domain.ReportSource
		want   []string
	}{
		{domain.ReportSourceGeneralExpenses, []string{"edit_general_expense", "delete_general_expense"}},
		{domain.ReportSourceCalendarEvents, []string{"edit_calendar_event", "delete_calendar_event"}},
		{domain.ReportSourceLeadActivities, []string{"edit_lead_activity", "delete_lead_activity"}},
		{"unknown", []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.source), func(t *testing.T) {
			actions := view.RowActions(domain.ExpenditureReportRowDTO{ID: id, SourceTable: tt.source})
			assert.Equal(t, tt.want, actionNames(actions))
			for _, a := range actions {
				assert.Equal(t, id.String(), a.Params["id"])
			}
		})
	}
}

func TestRenderExpenditureReport(t *testing.T) {
	doc := ui.NewDocument()
	shared := uuid.New()
	rows := []domain.ExpenditureReportRowDTO{
		{ID: shared, Date: domain.NewDate(2024, time.June, 2), Amount: decimal.NewFromInt(100), SourceTable: domain.ReportSourceCalendarEvents},
		{ID: shared, Date: domain.NewDate(2024, time.June, 1), Amount: decimal.RequireFromString("20.5"), SourceTable: domain.ReportSourceGeneralExpenses},
	}
	filter := domain.DateRange{StartDate: datePtr(2024, time.June, 1), EndDate: datePtr(2024, time.June, 30)}

	view.RenderExpenditureReport(doc, rows, filter, sorting.State{})
	content, ok := doc.Content(view.ExpenditureReportTable)
	require.True(t, ok)

	assert.Equal(t, "Expenditure Report (2024-06-01 to 2024-06-30)", content.Title)
	require.Len(t, content.Rows, 2)
	assert.NotEqual(t, content.Rows[0].Key, content.Rows[1].Key, "rows from different sources stay distinct")
	assert.Equal(t, "N/A", content.Rows[0].Cells[4])
	assert.Equal(t, []string{"Total Expenditure", "120.50"}, content.Footer)
	assert.True(t, decimal.RequireFromString("120.5").Equal(view.Total(rows)))

	view.RenderExpenditureReport(doc, nil, domain.DateRange{}, sorting.State{})
	content, _ = doc.Content(view.ExpenditureReportTable)
	assert.Equal(t, "Expenditure Report", content.Title)
	assert.True(t, content.Rows[0].Placeholder)
	assert.Equal(t, []string{"Total Expenditure", "0.00"}, content.Footer)
}

func TestCalendarEntries(t *testing.T) {
	l := lead("Ama", domain.LeadStageNew, nil)
	events := []domain.CalendarEventDTO{{ID: uuid.New(), Date: domain.NewDate(2024, time.June, 3), Type: domain.EventTypeVisit, LeadName: "Ama", Description: "Site"}}
	activities := []domain.LeadActivityDTO{{ID: uuid.New(), LeadID: l.ID, ActivityDate: domain.NewDate(2024, time.June, 1), ActivityType: domain.ActivityTypeCall}}
	expenses := []domain.GeneralExpenseDTO{{ID: uuid.New(), Date: domain.NewDate(2024, time.June, 2), Description: "Fuel"}}

	entries := view.CalendarEntries(events, activities, expenses, view.LeadNames([]domain.LeadDTO{l}))
	require.Len(t, entries, 3)
	assert.Equal(t, "call: Ama", entries[0].Title)
	assert.Equal(t, "Expense: Fuel", entries[1].Title)
	assert.Equal(t, "visit: Ama - Site", entries[2].Title)
	assert.Equal(t, "edit_calendar_event", entries[2].Action.Name)

	doc := ui.NewDocument()
	view.NewDocumentCalendar(doc, view.CalendarGrid).SetEntries(nil)
	content, _ := doc.Content(view.CalendarGrid)
	assert.True(t, content.Rows[0].Placeholder)
}

func TestRenderLeadDetail_OnlyOwnActivities(t *testing.T) {
	doc := ui.NewDocument()
	l := lead("Ama", domain.LeadStageQualified, nil)
	activities := []domain.LeadActivityDTO{
		{ID: uuid.New(), LeadID: l.ID, ActivityDate: domain.NewDate(2024, time.June, 1), Expenditure: decimal.NewFromInt(30)},
		{ID: uuid.New(), LeadID: uuid.New(), ActivityDate: domain.NewDate(2024, time.June, 1), Expenditure: decimal.NewFromInt(99)},
		{ID: uuid.New(), LeadID: l.ID, ActivityDate: domain.NewDate(2024, time.June, 2), Expenditure: decimal.NewFromInt(15)},
	}

	view.RenderLeadDetail(doc, l, activities, sorting.State{})

	panel, ok := doc.Content(view.LeadDetailPanel)
	require.True(t, ok)
	assert.Equal(t, "Ama", panel.Title)
	assert.Equal(t, []string{"Total Expenditure", "45.00"}, panel.Footer)

	table, _ := doc.Content(view.LeadActivitiesTable)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Ama", table.Rows[0].Cells[1])
}
